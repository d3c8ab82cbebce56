// Package report derives every read-side view of a transaction collection:
// totals, category groups, windowed distributions, pie geometry, upcoming bills
// and CSV export. All functions are pure and never touch storage.
package report

import (
	"FinanceTracker/internal/entity"

	"github.com/shopspring/decimal"
)

type Totals struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

// ComputeTotals sums amounts per type. Balance is always TotalIncome - TotalExpenses.
func ComputeTotals(txs []entity.Transaction) Totals {
	income, expenses := decimal.Zero, decimal.Zero

	for _, tx := range txs {
		amount := decimal.NewFromFloat(tx.Amount)
		switch tx.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(amount)
		}
	}

	totals := Totals{
		TotalIncome:   income.InexactFloat64(),
		TotalExpenses: expenses.InexactFloat64(),
	}
	totals.Balance = totals.TotalIncome - totals.TotalExpenses

	return totals
}

func sumAmounts(txs []entity.Transaction) float64 {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(decimal.NewFromFloat(tx.Amount))
	}
	return total.InexactFloat64()
}
