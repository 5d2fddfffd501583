package service

import (
	"math"

	"github.com/Mariocbneto/CRUD-Academia/internals/features/finance/records/model"
)

// Summary: totais por categoria e saldo líquido (INCOME − EXPENSE).
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Summarize agrega a coleção inteira. A soma é feita em centavos inteiros
// para conter deriva de ponto flutuante; a API continua expondo float.
func Summarize(records []model.FinancialRecordModel) Summary {
	var income, expense int64
	for _, r := range records {
		switch r.Type {
		case model.TypeIncome:
			income += toCents(r.Amount)
		case model.TypeExpense:
			expense += toCents(r.Amount)
		}
	}
	return Summary{
		Income:  fromCents(income),
		Expense: fromCents(expense),
		Balance: fromCents(income - expense),
	}
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}
