package events

// HistoryChangedEvent fires on every mutation of the borrow workflow:
// new request, approval, rejection, return request.
type HistoryChangedEvent struct {
	RecordID    uint64
	EquipmentID uint64
	NewStatus   string
}

func (e HistoryChangedEvent) Name() string {
	return "history.changed"
}

// EquipmentChangedEvent fires when inventory rows are created, removed
// or change status outside the borrow workflow.
type EquipmentChangedEvent struct {
	EquipmentID uint64
}

func (e EquipmentChangedEvent) Name() string {
	return "equipment.changed"
}
