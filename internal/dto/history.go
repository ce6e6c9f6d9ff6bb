package dto

import "time"

type CreateBorrowDTO struct {
	BorrowerName string     `json:"borrower_name" validate:"required"`
	ReturnDate   *time.Time `json:"return_date"`
	Remark       string     `json:"remark" validate:"required"`
}

type ReturnBorrowDTO struct {
	ReceivedBy string `json:"received_by" validate:"required"`
}

type RejectBorrowDTO struct {
	Remark string `json:"remark" validate:"required"`
}
