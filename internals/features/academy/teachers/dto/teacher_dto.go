package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/Mariocbneto/CRUD-Academia/internals/constants"
	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/teachers/model"
)

var validate = validator.New()

var nameRe = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s]+$`)

func init() {
	_ = validate.RegisterValidation("nameletters", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
	// especialidade precisa estar no enum fixo de 10 valores
	_ = validate.RegisterValidation("classtype", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		for _, ct := range constants.ClassTypes {
			if v == ct {
				return true
			}
		}
		return false
	})
}

type CreateTeacherRequest struct {
	Name      string  `json:"name" validate:"required,nameletters"`
	CPF       string  `json:"cpf" validate:"required,len=11,numeric"`
	Phone     string  `json:"phone" validate:"required,numeric"`
	Email     string  `json:"email" validate:"required,email"`
	ClassType string  `json:"classType" validate:"required,classtype"`
	Photo     *string `json:"photo"`
}

func (r *CreateTeacherRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateTeacherRequest) ToModel() model.TeacherModel {
	return model.TeacherModel{
		Name:      r.Name,
		CPF:       r.CPF,
		Phone:     r.Phone,
		Email:     r.Email,
		ClassType: r.ClassType,
		Photo:     r.Photo,
	}
}

type UpdateTeacherRequest struct {
	Name      *string `json:"name" validate:"omitempty,nameletters"`
	CPF       *string `json:"cpf" validate:"omitempty,len=11,numeric"`
	Phone     *string `json:"phone" validate:"omitempty,numeric"`
	Email     *string `json:"email" validate:"omitempty,email"`
	ClassType *string `json:"classType" validate:"omitempty,classtype"`
	Photo     *string `json:"photo"`
}

func (r *UpdateTeacherRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateTeacherRequest) HasChanges() bool {
	return r.Name != nil || r.CPF != nil || r.Phone != nil ||
		r.Email != nil || r.ClassType != nil || r.Photo != nil
}

func (r *UpdateTeacherRequest) Apply(m *model.TeacherModel) {
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
	if r.ClassType != nil {
		m.ClassType = *r.ClassType
	}
	if r.Photo != nil {
		m.Photo = r.Photo
	}
}
