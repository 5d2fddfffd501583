package model

import (
	"time"
)

// UserModel representa a tabela users no banco. Recurso legado do blog,
// também usado pelo login do painel (username/password).
type UserModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  *string        `gorm:"size:50;uniqueIndex" json:"username,omitempty"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"size:255" json:"-"`
	Posts     []PostModel    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Comments  []CommentModel `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}
