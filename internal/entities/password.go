package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// VaultEntry is a record in the company-wide password vault.
type VaultEntry struct {
	ID        uint64      `json:"id" db:"id"`
	Title     string      `json:"title" db:"title"`
	Username  null.String `json:"username" db:"username"`
	Password  string      `json:"password" db:"password"`
	Details   null.String `json:"details" db:"details"`
	Remark    null.String `json:"remark" db:"remark"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// EquipmentPassword is a credential attached to a single asset.
type EquipmentPassword struct {
	ID          uint64      `json:"id" db:"id"`
	EquipmentID uint64      `json:"equipment_id" db:"equipment_id"`
	Password    string      `json:"password" db:"password"`
	Note        null.String `json:"note" db:"note"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}
