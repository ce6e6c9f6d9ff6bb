package dto

type CreateEquipmentDTO struct {
	Category    string `json:"category" validate:"required"`
	SubCategory string `json:"sub_category"`
	AssetCode   string `json:"asset_code" validate:"required,asset_code"`
	Name        string `json:"name" validate:"required"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
	RefDocument string `json:"ref_document"`
	Checklist   string `json:"checklist"`
	IsLeased    bool   `json:"is_leased"`
}

type UpdateEquipmentStatusDTO struct {
	Status string `json:"status" validate:"required"`
}

type UpdateEquipmentLocationDTO struct {
	Location string `json:"location" validate:"required,oneof=office home"`
}

type BindEquipmentDTO struct {
	AssetCode string `json:"asset_code" validate:"required"`
}
