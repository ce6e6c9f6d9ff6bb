package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func menuTitles(role string) []string {
	var titles []string
	for _, item := range MenuItems(role) {
		titles = append(titles, item.Title)
	}
	return titles
}

func TestMenuItems_NormalSeesNoAdminEntries(t *testing.T) {
	titles := menuTitles("Normal")

	assert.Contains(t, titles, "Equipment")
	assert.Contains(t, titles, "Borrow / Return")
	assert.Contains(t, titles, "My Equipment")

	assert.NotContains(t, titles, "Approval Requests")
	assert.NotContains(t, titles, "User Management")
	assert.NotContains(t, titles, "Password Manager")
}

func TestMenuItems_ITSeesApprovalsAndVault(t *testing.T) {
	titles := menuTitles("IT")

	assert.Contains(t, titles, "Approval Requests")
	assert.Contains(t, titles, "User Management")
	assert.Contains(t, titles, "Password Manager")
}

func TestMenuItems_HRSeesApprovalsButNotVault(t *testing.T) {
	titles := menuTitles("HR")

	assert.Contains(t, titles, "Approval Requests")
	assert.NotContains(t, titles, "Password Manager")
}

func TestRolePredicates(t *testing.T) {
	assert.False(t, HasElevatedAccess("Normal"))
	assert.True(t, HasElevatedAccess("Head"))

	assert.True(t, CanOpenVault("IT"))
	assert.True(t, CanOpenVault("OwnerBMU"))
	assert.False(t, CanOpenVault("HR"))
	assert.False(t, CanOpenVault("Head"))
	assert.False(t, CanOpenVault("Normal"))
}
