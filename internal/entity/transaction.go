package entity

import (
	"FinanceTracker/internal/api/transaction"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Recurrence marks an expense as a recurring bill. Only expenses carry one.
type Recurrence struct {
	DueDate time.Time `json:"due_date"`
	IsPaid  bool      `json:"is_paid"`
}

type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Recurrence  *Recurrence     `json:"recurrence,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (t Transaction) IsRecurring() bool {
	return t.Recurrence != nil
}

func (t Transaction) IsPaid() bool {
	return t.Recurrence != nil && t.Recurrence.IsPaid
}

// Validate checks the transaction against the data model. knownCategory reports
// whether a category key exists for the owner (built-in or custom).
func (t *Transaction) Validate(knownCategory func(key string) bool) error {
	if !t.Type.IsValid() {
		return transaction.ErrInvalidTransactionType
	}

	if strings.TrimSpace(t.Description) == "" {
		return transaction.ErrInvalidDescription
	}

	if !validAmount(t.Amount) {
		return transaction.ErrInvalidAmount
	}

	if knownCategory == nil || !knownCategory(t.Category) {
		return transaction.ErrInvalidCategory
	}

	if t.Recurrence != nil {
		if t.Type != TransactionTypeExpense {
			return transaction.ErrRecurringIncome
		}
		if t.Recurrence.DueDate.IsZero() {
			return transaction.ErrMissingDueDate
		}
	}

	return nil
}

// MaxAmount is the first value that no longer fits NUMERIC(15, 2).
const MaxAmount = 1e13

// validAmount accepts positive amounts with at most two decimal places.
func validAmount(amount float64) bool {
	if amount <= 0 || amount >= MaxAmount || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return decimal.NewFromFloat(amount).Exponent() >= -2
}

// CalendarDate keeps only the Y-M-D of t, as UTC midnight.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
