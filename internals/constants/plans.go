package constants

// Planos de matrícula e a duração de cada um em meses.
const (
	PlanMensal     = "MENSAL"
	PlanTrimestral = "TRIMESTRAL"
	PlanSemestral  = "SEMESTRAL"
	PlanAnual      = "ANUAL"
)

var PlanMonths = map[string]int{
	PlanMensal:     1,
	PlanTrimestral: 3,
	PlanSemestral:  6,
	PlanAnual:      12,
}
