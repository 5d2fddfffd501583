package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dezembro/2023, segundas e quartas: 4, 6, 11, 13, 18, 20, 25 e 27.
func TestExpandScheduleDecember(t *testing.T) {
	batch, groupID, err := ExpandSchedule(ScheduleInput{
		Name:      "Pilates",
		TeacherID: 7,
		TimeStart: "08:00",
		TimeEnd:   "09:00",
		Start:     day(2023, 12, 1),
		End:       day(2023, 12, 31),
		WeekDays:  []int{1, 3},
	})
	require.NoError(t, err)
	require.Len(t, batch, 8)
	assert.NotEmpty(t, groupID)

	wantDays := []int{4, 6, 11, 13, 18, 20, 25, 27}
	for i, class := range batch {
		assert.Equal(t, wantDays[i], class.Date.Day())
		assert.Equal(t, time.December, class.Date.Month())
		assert.Equal(t, "Pilates", class.Name)
		assert.Equal(t, uint(7), class.TeacherID)
		require.NotNil(t, class.GroupID)
		assert.Equal(t, groupID, *class.GroupID, "todas as aulas do lote compartilham o groupId")
	}
}

func TestExpandScheduleInclusiveBoundaries(t *testing.T) {
	// 1/dez/2023 é sexta e 31/dez é domingo: as duas pontas entram
	batch, _, err := ExpandSchedule(ScheduleInput{
		Name:      "Funcional",
		TeacherID: 1,
		TimeStart: "18:00",
		TimeEnd:   "19:00",
		Start:     day(2023, 12, 1),
		End:       day(2023, 12, 31),
		WeekDays:  []int{5, 0},
	})
	require.NoError(t, err)

	days := make([]int, 0, len(batch))
	for _, class := range batch {
		days = append(days, class.Date.Day())
	}
	assert.Contains(t, days, 1)
	assert.Contains(t, days, 31)
}

func TestExpandScheduleSingleDay(t *testing.T) {
	// intervalo de um único dia que casa com o weekday pedido
	batch, _, err := ExpandSchedule(ScheduleInput{
		Name:      "Yoga",
		TeacherID: 2,
		TimeStart: "07:00",
		TimeEnd:   "08:00",
		Start:     day(2024, 1, 8), // segunda
		End:       day(2024, 1, 8),
		WeekDays:  []int{1},
	})
	require.NoError(t, err)
	assert.Len(t, batch, 1)
}

func TestExpandScheduleEmptyWeekDays(t *testing.T) {
	batch, _, err := ExpandSchedule(ScheduleInput{
		Name:      "Spinning",
		TeacherID: 3,
		TimeStart: "08:00",
		TimeEnd:   "09:00",
		Start:     day(2023, 12, 1),
		End:       day(2023, 12, 31),
		WeekDays:  nil,
	})
	assert.ErrorIs(t, err, ErrNoMatchingDays)
	assert.Nil(t, batch)
}

func TestExpandScheduleNoMatchingDay(t *testing.T) {
	// 4 e 5/dez/2023 são segunda e terça; domingo nunca aparece
	_, _, err := ExpandSchedule(ScheduleInput{
		Name:      "Zumba",
		TeacherID: 4,
		TimeStart: "10:00",
		TimeEnd:   "11:00",
		Start:     day(2023, 12, 4),
		End:       day(2023, 12, 5),
		WeekDays:  []int{0},
	})
	assert.ErrorIs(t, err, ErrNoMatchingDays)
}

func TestExpandScheduleNormalizesTimeOfDay(t *testing.T) {
	// horários nas bordas não podem deslocar o dia
	batch, _, err := ExpandSchedule(ScheduleInput{
		Name:      "HIIT",
		TeacherID: 5,
		TimeStart: "06:00",
		TimeEnd:   "07:00",
		Start:     time.Date(2024, 2, 5, 23, 59, 0, 0, time.UTC), // segunda
		End:       time.Date(2024, 2, 12, 0, 1, 0, 0, time.UTC),  // segunda
		WeekDays:  []int{1},
	})
	require.NoError(t, err)
	require.Len(t, batch, 2)
	for _, class := range batch {
		assert.Equal(t, 0, class.Date.Hour())
		assert.Equal(t, time.UTC, class.Date.Location())
	}
}
