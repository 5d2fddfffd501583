package model

import (
	"time"
)

// CommentModel representa a tabela comments no banco
type CommentModel struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	PostID    uint       `gorm:"not null;index" json:"postId"`
	Post      *PostModel `gorm:"foreignKey:PostID" json:"post,omitempty"`
	UserID    uint       `gorm:"not null;index" json:"userId"`
	User      *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CommentModel) TableName() string {
	return "comments"
}
