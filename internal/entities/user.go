package entities

import (
	"bmu-system/pkg/types"
)

type User struct {
	ID         uint64 `json:"ID" db:"id"`
	Username   string `json:"username" db:"username"`
	Password   string `json:"-" db:"password"`
	FirstName  string `json:"first_name" db:"first_name"`
	LastName   string `json:"last_name" db:"last_name"`
	Department string `json:"department" db:"department"`
	Role       string `json:"role" db:"role"`

	types.BaseEntity
}
