package dto

type CreateRepairReportDTO struct {
	EquipmentID   uint64 `json:"equipment_id" validate:"required"`
	ProblemDetail string `json:"problem_detail" validate:"required"`
}
