package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/blog/model"
)

var validate = validator.New()

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
	PostID  uint   `json:"postId" validate:"required"`
	UserID  uint   `json:"userId" validate:"required"`
}

func (r *CreateCommentRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateCommentRequest) ToModel() model.CommentModel {
	return model.CommentModel{
		Content: r.Content,
		PostID:  r.PostID,
		UserID:  r.UserID,
	}
}

type UpdateCommentRequest struct {
	Content *string `json:"content"`
	PostID  *uint   `json:"postId"`
	UserID  *uint   `json:"userId"`
}

func (r *UpdateCommentRequest) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateCommentRequest) HasChanges() bool {
	return r.Content != nil || r.PostID != nil || r.UserID != nil
}

func (r *UpdateCommentRequest) Apply(m *model.CommentModel) {
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.PostID != nil {
		m.PostID = *r.PostID
	}
	if r.UserID != nil {
		m.UserID = *r.UserID
	}
}
