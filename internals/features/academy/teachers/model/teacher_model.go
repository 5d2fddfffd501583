package model

import (
	"time"
)

// TeacherModel representa a tabela teachers no banco.
// CPF e e-mail são únicos.
type TeacherModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	CPF       string    `gorm:"column:cpf;size:11;not null;uniqueIndex" json:"cpf"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	ClassType string    `gorm:"type:varchar(30);not null" json:"classType"`
	Photo     *string   `gorm:"type:text" json:"photo,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
