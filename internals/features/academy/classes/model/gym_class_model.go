package model

import (
	"time"

	teacherModel "github.com/Mariocbneto/CRUD-Academia/internals/features/academy/teachers/model"
)

// GymClassModel representa a tabela gym_classes no banco.
// GroupID marca o lote de aulas criado por uma mesma geração de agenda.
type GymClassModel struct {
	ID        uint                       `gorm:"primaryKey" json:"id"`
	Name      string                     `gorm:"size:120;not null" json:"name"`
	Date      time.Time                  `gorm:"not null;index" json:"date"`
	TimeStart string                     `gorm:"size:5;not null" json:"timeStart"`
	TimeEnd   string                     `gorm:"size:5;not null" json:"timeEnd"`
	TeacherID uint                       `gorm:"not null;index" json:"teacherId"`
	Teacher   *teacherModel.TeacherModel `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	GroupID   *string                    `gorm:"size:32;index" json:"groupId,omitempty"`
	CreatedAt time.Time                  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time                  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (GymClassModel) TableName() string {
	return "gym_classes"
}
