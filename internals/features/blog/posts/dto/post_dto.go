package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/model"
)

var validate = validator.New()

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	UserID  uint   `json:"userId" validate:"required"`
}

func (r *CreatePostRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreatePostRequest) ToModel() model.PostModel {
	return model.PostModel{
		Title:   r.Title,
		Content: r.Content,
		UserID:  r.UserID,
	}
}

type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	UserID  *uint   `json:"userId"`
}

func (r *UpdatePostRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdatePostRequest) HasChanges() bool {
	return r.Title != nil || r.Content != nil || r.UserID != nil
}

func (r *UpdatePostRequest) Apply(m *model.PostModel) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.UserID != nil {
		m.UserID = *r.UserID
	}
}
