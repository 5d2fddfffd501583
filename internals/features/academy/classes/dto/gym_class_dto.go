package dto

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateGymClassRequest: criação avulsa de uma única aula.
type CreateGymClassRequest struct {
	Name      string `json:"name" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeStart string `json:"timeStart" validate:"required,datetime=15:04"`
	TimeEnd   string `json:"timeEnd" validate:"required,datetime=15:04"`
	TeacherID uint   `json:"teacherId" validate:"required"`
}

func (r *CreateGymClassRequest) Validate() error {
	return validate.Struct(r)
}

// GenerateScheduleRequest: geração em massa (agenda recorrente).
// weekDays usa índices 0=domingo..6=sábado; lista vazia cai no erro de
// intervalo sem dia compatível, não em erro de validação.
type GenerateScheduleRequest struct {
	Name      string `json:"name" validate:"required"`
	TeacherID uint   `json:"teacherId" validate:"required"`
	TimeStart string `json:"timeStart" validate:"required,datetime=15:04"`
	TimeEnd   string `json:"timeEnd" validate:"required,datetime=15:04"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	WeekDays  []int  `json:"weekDays" validate:"dive,gte=0,lte=6"`
}

func (r *GenerateScheduleRequest) Validate() error {
	return validate.Struct(r)
}
