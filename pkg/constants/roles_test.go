package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsElevatedRole(t *testing.T) {
	testCases := []struct {
		role     string
		elevated bool
	}{
		{RoleNormal, false},
		{RoleHR, true},
		{RoleIT, true},
		{RoleOwnerBMU, true},
		{RoleHead, true},
		{"", false},
		{"admin", false},
	}

	for _, tc := range testCases {
		assert.Equalf(t, tc.elevated, IsElevatedRole(tc.role), "role %q", tc.role)
	}
}

func TestIsVaultRole(t *testing.T) {
	testCases := []struct {
		role  string
		vault bool
	}{
		{RoleNormal, false},
		{RoleHR, false},
		{RoleIT, true},
		{RoleOwnerBMU, true},
		{RoleHead, false},
	}

	for _, tc := range testCases {
		assert.Equalf(t, tc.vault, IsVaultRole(tc.role), "role %q", tc.role)
	}
}

func TestIsManualEquipmentStatus(t *testing.T) {
	assert.True(t, IsManualEquipmentStatus(EquipmentStatusUsable))
	assert.True(t, IsManualEquipmentStatus(EquipmentStatusBroken))
	assert.True(t, IsManualEquipmentStatus(EquipmentStatusNeedsRepair))

	// Owned by the borrow workflow and the binding flow.
	assert.False(t, IsManualEquipmentStatus(EquipmentStatusBorrowed))
	assert.False(t, IsManualEquipmentStatus(EquipmentStatusInUse))
}
