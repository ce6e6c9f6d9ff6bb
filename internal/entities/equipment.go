package entities

import (
	"bmu-system/pkg/types"

	"github.com/aarondl/null/v8"
)

type Equipment struct {
	ID              uint64      `json:"ID" db:"id"`
	Category        string      `json:"category" db:"category"`
	SubCategory     null.String `json:"sub_category" db:"sub_category"`
	AssetCode       string      `json:"asset_code" db:"asset_code"`
	Name            string      `json:"name" db:"name"`
	Unit            null.String `json:"unit" db:"unit"`
	Description     null.String `json:"description" db:"description"`
	RefDocument     null.String `json:"ref_document" db:"ref_document"`
	Checklist       null.String `json:"checklist" db:"checklist"`
	IsLeased        bool        `json:"is_leased" db:"is_leased"`
	Status          string      `json:"status" db:"status"`
	AssignedTo      null.String `json:"assigned_to" db:"assigned_to"`
	AssignedDate    null.Time   `json:"assigned_date" db:"assigned_date"`
	CurrentLocation null.String `json:"current_location" db:"current_location"`

	types.BaseEntity
}
