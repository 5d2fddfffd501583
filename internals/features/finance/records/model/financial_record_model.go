package model

import (
	"time"

	studentModel "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/students/model"
	teacherModel "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/teachers/model"
)

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// FinancialRecordModel representa a tabela financial_records no banco.
// Entradas (INCOME) podem apontar para um aluno; saídas (EXPENSE), para
// um professor.
type FinancialRecordModel struct {
	ID          uint                       `gorm:"primaryKey" json:"id"`
	Type        string                     `gorm:"type:varchar(10);not null" json:"type"`
	Amount      float64                    `gorm:"not null" json:"amount"`
	Description string                     `gorm:"size:255;not null" json:"description"`
	Date        time.Time                  `gorm:"not null;index" json:"date"`
	StudentID   *uint                      `json:"studentId,omitempty"`
	Student     *studentModel.StudentModel `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	TeacherID   *uint                      `json:"teacherId,omitempty"`
	Teacher     *teacherModel.TeacherModel `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	CreatedAt   time.Time                  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time                  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (FinancialRecordModel) TableName() string {
	return "financial_records"
}
