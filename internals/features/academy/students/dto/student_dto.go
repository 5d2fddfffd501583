package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/students/model"
)

var validate = validator.New()

// nome: apenas letras (com acentos) e espaços
var nameRe = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s]+$`)

func init() {
	_ = validate.RegisterValidation("nameletters", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
}

type CreateStudentRequest struct {
	Name  string  `json:"name" validate:"required,nameletters"`
	CPF   string  `json:"cpf" validate:"required,len=11,numeric"`
	Phone string  `json:"phone" validate:"required,numeric"`
	Email string  `json:"email" validate:"required,email"`
	Plan  string  `json:"plan" validate:"required,oneof=MENSAL TRIMESTRAL SEMESTRAL ANUAL"`
	Photo *string `json:"photo"`
}

func (r *CreateStudentRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateStudentRequest: payload parcial, exige ao menos um campo preenchido.
type UpdateStudentRequest struct {
	Name  *string `json:"name" validate:"omitempty,nameletters"`
	CPF   *string `json:"cpf" validate:"omitempty,len=11,numeric"`
	Phone *string `json:"phone" validate:"omitempty,numeric"`
	Email *string `json:"email" validate:"omitempty,email"`
	Plan  *string `json:"plan" validate:"omitempty,oneof=MENSAL TRIMESTRAL SEMESTRAL ANUAL"`
	Photo *string `json:"photo"`
}

func (r *UpdateStudentRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateStudentRequest) HasChanges() bool {
	return r.Name != nil || r.CPF != nil || r.Phone != nil ||
		r.Email != nil || r.Plan != nil || r.Photo != nil
}

// Apply copia os campos presentes para o model. O recálculo de EndDate
// quando o plano muda fica a cargo do controller.
func (r *UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.CPF != nil {
		m.CPF = *r.CPF
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Plan != nil {
		m.Plan = *r.Plan
	}
	if r.Photo != nil {
		m.Photo = r.Photo
	}
}
