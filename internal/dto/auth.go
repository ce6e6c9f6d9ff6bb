package dto

import "bmu-system/internal/entities"

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Token string        `json:"token"`
	User  entities.User `json:"user"`
}
