package dto

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type CreateFinancialRecordRequest struct {
	Type        string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required,min=3"`
	StudentID   *uint   `json:"studentId"`
	TeacherID   *uint   `json:"teacherId"`
}

func (r *CreateFinancialRecordRequest) Validate() error {
	return validate.Struct(r)
}
