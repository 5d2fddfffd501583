package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/model"
)

var validate = validator.New()

type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Password *string `json:"password" validate:"omitempty,min=4"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateUserRequest) ToModel() model.UserModel {
	u := model.UserModel{
		Name:     r.Name,
		Email:    r.Email,
		Username: r.Username,
	}
	if r.Password != nil {
		u.Password = *r.Password
	}
	return u
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
}

func (r *UpdateUserRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateUserRequest) HasChanges() bool {
	return r.Name != nil || r.Email != nil || r.Username != nil
}

func (r *UpdateUserRequest) Apply(m *model.UserModel) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Username != nil {
		m.Username = r.Username
	}
}
