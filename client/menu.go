package client

import "bmu-system/pkg/constants"

// HasElevatedAccess reports whether the role unlocks the admin
// affordances: approval queue, user management, equipment add/delete,
// status overrides and repair resolution. The server enforces the same
// predicate; this one only decides what to show.
func HasElevatedAccess(role string) bool {
	return constants.IsElevatedRole(role)
}

// CanOpenVault reports whether the role sees the company password vault
// menu entry.
func CanOpenVault(role string) bool {
	return constants.IsVaultRole(role)
}

type MenuItem struct {
	Title string
	Path  string
}

// MenuItems returns the navigation entries available to the role.
func MenuItems(role string) []MenuItem {
	items := []MenuItem{
		{Title: "Dashboard", Path: "/dashboard"},
		{Title: "Equipment", Path: "/equipment"},
		{Title: "Borrow / Return", Path: "/borrow"},
		{Title: "Report Broken", Path: "/report-broken"},
		{Title: "My Equipment", Path: "/my-equipment"},
	}
	if HasElevatedAccess(role) {
		items = append(items,
			MenuItem{Title: "Approval Requests", Path: "/approvals"},
			MenuItem{Title: "User Management", Path: "/users"},
		)
	}
	if CanOpenVault(role) {
		items = append(items, MenuItem{Title: "Password Manager", Path: "/passwords"})
	}
	return items
}
