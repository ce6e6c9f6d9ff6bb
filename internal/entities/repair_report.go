package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type RepairReport struct {
	ID            uint64    `json:"id" db:"id"`
	EquipmentID   uint64    `json:"equipment_id" db:"equipment_id"`
	ReporterName  string    `json:"reporter_name" db:"reporter_name"`
	ProblemDetail string    `json:"problem_detail" db:"problem_detail"`
	ReportDate    time.Time `json:"report_date" db:"report_date"`
	RepairStatus  string    `json:"repair_status" db:"repair_status"`
	ResolvedDate  null.Time `json:"resolved_date" db:"resolved_date"`
}

// RepairItem joins the report with the equipment it concerns.
type RepairItem struct {
	RepairReport
	EquipmentName      string `json:"equipment_name" db:"equipment_name"`
	EquipmentAssetCode string `json:"equipment_asset_code" db:"equipment_asset_code"`
	EquipmentCategory  string `json:"equipment_category" db:"equipment_category"`
}
