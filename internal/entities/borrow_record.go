package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type BorrowRecord struct {
	ID           uint64      `json:"id" db:"id"`
	EquipmentID  uint64      `json:"equipment_id" db:"equipment_id"`
	BorrowerName string      `json:"borrower_name" db:"borrower_name"`
	BorrowDate   time.Time   `json:"borrow_date" db:"borrow_date"`
	ReturnDate   null.Time   `json:"return_date" db:"return_date"`
	Remark       null.String `json:"remark" db:"remark"`
	ReceivedBy   null.String `json:"received_by" db:"received_by"`
	Status       string      `json:"status" db:"status"`
}

// HistoryItem is a borrow record joined with the equipment columns the
// dashboards render next to it.
type HistoryItem struct {
	BorrowRecord
	EquipmentName      string      `json:"equipment_name" db:"equipment_name"`
	EquipmentAssetCode string      `json:"equipment_asset_code" db:"equipment_asset_code"`
	EquipmentCategory  string      `json:"equipment_category" db:"equipment_category"`
	EquipmentStatus    string      `json:"equipment_status" db:"equipment_status"`
	EquipmentUnit      null.String `json:"equipment_unit" db:"equipment_unit"`
}
