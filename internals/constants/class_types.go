package constants

// Especialidades de professor (enum fixo de 10 valores).
var ClassTypes = []string{
	"MUSCULACAO",
	"PILATES",
	"FUNCIONAL",
	"CROSS_TRAINING",
	"YOGA",
	"ZUMBA_DANCA",
	"HIIT",
	"SPINNING",
	"ALONGAMENTO",
	"FISIOTERAPIA_REABILITACAO",
}
