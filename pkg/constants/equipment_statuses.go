package constants

// --- EQUIPMENT STATUSES (match the codes stored in the DB) ---
const (
	EquipmentStatusUsable      = "usable"
	EquipmentStatusInUse       = "in_use"
	EquipmentStatusBorrowed    = "borrowed"
	EquipmentStatusBroken      = "broken"
	EquipmentStatusNeedsRepair = "needs_repair"
)

var EquipmentStatuses = []string{
	EquipmentStatusUsable,
	EquipmentStatusInUse,
	EquipmentStatusBorrowed,
	EquipmentStatusBroken,
	EquipmentStatusNeedsRepair,
}

func IsValidEquipmentStatus(code string) bool {
	for _, s := range EquipmentStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// Statuses an operator may set directly. borrowed and in_use are owned
// by the borrow workflow and the binding flow respectively.
var ManualEquipmentStatuses = []string{
	EquipmentStatusUsable,
	EquipmentStatusBroken,
	EquipmentStatusNeedsRepair,
}

func IsManualEquipmentStatus(code string) bool {
	for _, s := range ManualEquipmentStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// --- EQUIPMENT LOCATIONS ---
const (
	LocationOffice = "office"
	LocationHome   = "home"
)

func IsValidLocation(code string) bool {
	return code == LocationOffice || code == LocationHome
}
