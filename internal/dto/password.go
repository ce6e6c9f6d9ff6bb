package dto

type VaultEntryDTO struct {
	Title    string `json:"title" validate:"required"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
	Details  string `json:"details"`
	Remark   string `json:"remark"`
}

type CreateEquipmentPasswordDTO struct {
	Password string `json:"password" validate:"required"`
	Note     string `json:"note"`
}
