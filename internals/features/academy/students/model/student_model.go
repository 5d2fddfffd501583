package model

import (
	"time"
)

// StudentModel representa a tabela students no banco
type StudentModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	CPF       string    `gorm:"column:cpf;size:11;not null" json:"cpf"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Plan      string    `gorm:"type:varchar(20);not null" json:"plan"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	Photo     *string   `gorm:"type:text" json:"photo,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (StudentModel) TableName() string {
	return "students"
}
