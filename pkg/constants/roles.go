package constants

// --- USER ROLES (match the codes stored in the DB) ---
const (
	RoleNormal   = "Normal"
	RoleHR       = "HR"
	RoleIT       = "IT"
	RoleOwnerBMU = "OwnerBMU"
	RoleHead     = "Head"
)

var Roles = []string{
	RoleNormal,
	RoleHR,
	RoleIT,
	RoleOwnerBMU,
	RoleHead,
}

func IsValidRole(code string) bool {
	for _, r := range Roles {
		if r == code {
			return true
		}
	}
	return false
}

// Elevated roles may manage inventory, approve requests, resolve repair
// reports and administer users.
var ElevatedRoles = []string{
	RoleHR,
	RoleIT,
	RoleOwnerBMU,
	RoleHead,
}

func IsElevatedRole(code string) bool {
	for _, r := range ElevatedRoles {
		if r == code {
			return true
		}
	}
	return false
}

// Roles allowed to see the company password vault.
var VaultRoles = []string{
	RoleIT,
	RoleOwnerBMU,
}

func IsVaultRole(code string) bool {
	for _, r := range VaultRoles {
		if r == code {
			return true
		}
	}
	return false
}
