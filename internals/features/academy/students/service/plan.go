package service

import (
	"time"

	"github.com/Mariocbneto/CRUD-Academia/internals/constants"
)

// PlanEndDate calcula o vencimento da matrícula: start + duração do plano
// em meses de calendário. Política de overflow: segue time.AddDate, ou seja,
// 31/jan + 1 mês cai no início de março (não há clamp para o fim do mês).
func PlanEndDate(plan string, start time.Time) time.Time {
	return start.AddDate(0, constants.PlanMonths[plan], 0)
}
