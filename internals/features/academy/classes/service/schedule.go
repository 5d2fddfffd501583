package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/academy/classes/model"
)

// ErrNoMatchingDays: nenhum dia do intervalo caiu nos dias da semana pedidos.
var ErrNoMatchingDays = errors.New("nenhum dia compatível no intervalo")

// ScheduleInput descreve uma geração de agenda: uma aula por dia do
// intervalo [Start, End] cujo dia da semana esteja em WeekDays (0=domingo).
type ScheduleInput struct {
	Name      string
	TeacherID uint
	TimeStart string
	TimeEnd   string
	Start     time.Time
	End       time.Time
	WeekDays  []int
}

// DateOnly descarta o horário, fixando a data em meia-noite UTC.
// Evita que fuso horário desloque o dia durante a iteração.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ExpandSchedule percorre o intervalo dia a dia (inclusive nas duas pontas)
// e materializa uma aula para cada dia compatível. Todas as aulas do lote
// compartilham um groupId derivado do relógio. Intervalo sem nenhum dia
// compatível é erro: a geração é tudo-ou-nada.
func ExpandSchedule(in ScheduleInput) ([]model.GymClassModel, string, error) {
	groupID := strconv.FormatInt(time.Now().UnixMilli(), 10)

	wanted := make(map[time.Weekday]bool, len(in.WeekDays))
	for _, d := range in.WeekDays {
		wanted[time.Weekday(d)] = true
	}

	var batch []model.GymClassModel
	end := DateOnly(in.End)
	for d := DateOnly(in.Start); !d.After(end); d = d.AddDate(0, 0, 1) {
		if !wanted[d.Weekday()] {
			continue
		}
		batch = append(batch, model.GymClassModel{
			Name:      in.Name,
			Date:      d,
			TimeStart: in.TimeStart,
			TimeEnd:   in.TimeEnd,
			TeacherID: in.TeacherID,
			GroupID:   &groupID,
		})
	}

	if len(batch) == 0 {
		return nil, "", ErrNoMatchingDays
	}
	return batch, groupID, nil
}
