package dto

type CreateUserDTO struct {
	Username   string `json:"username" validate:"required,username_format"`
	Password   string `json:"password" validate:"required,min=6"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Department string `json:"department" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=Normal HR IT OwnerBMU Head"`
}
