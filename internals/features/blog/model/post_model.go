package model

import (
	"time"
)

// PostModel representa a tabela posts no banco
type PostModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	UserID    uint           `gorm:"not null;index" json:"userId"`
	User      *UserModel     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comments  []CommentModel `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (PostModel) TableName() string {
	return "posts"
}
