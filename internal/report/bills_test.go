package report

import (
	"FinanceTracker/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bill(id string, due time.Time, paid bool) entity.Transaction {
	t := tx(id, 100, entity.TransactionTypeExpense, "housing", due)
	t.Recurrence = &entity.Recurrence{DueDate: entity.CalendarDate(due), IsPaid: paid}
	return t
}

func TestUpcomingBills_OverdueThenPaid(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2024, time.May, 10, 22, 30, 0, 0, loc)

	overdue := bill("rent", time.Date(2024, time.May, 8, 0, 0, 0, 0, time.UTC), false)
	upcoming := bill("gym", time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC), false)

	bills := UpcomingBills([]entity.Transaction{upcoming, overdue}, now)
	require.Len(t, bills, 2)
	assert.Equal(t, "rent", bills[0].Transaction.ID)
	assert.Equal(t, -2, bills[0].DiffDays)
	assert.Equal(t, BillOverdue, bills[0].Status)
	assert.Equal(t, "Overdue by 2 days", bills[0].StatusText(entity.LocaleEnUS))
	assert.Equal(t, 10, bills[1].DiffDays)

	overdue.Recurrence.IsPaid = true
	bills = UpcomingBills([]entity.Transaction{upcoming, overdue}, now)
	require.Len(t, bills, 2)
	assert.Equal(t, "gym", bills[0].Transaction.ID)
	assert.Equal(t, "rent", bills[1].Transaction.ID)
	assert.Equal(t, BillPaid, bills[1].Status)
	assert.Equal(t, "Paid", bills[1].StatusText(entity.LocaleEnUS))
}

func TestUpcomingBills_Horizon(t *testing.T) {
	now := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	txs := []entity.Transaction{
		bill("in30", now.AddDate(0, 0, 30), false),
		bill("in31", now.AddDate(0, 0, 31), false),
		bill("old", now.AddDate(-1, 0, 0), false),
		bill("today", now, false),
		tx("plain", 50, entity.TransactionTypeExpense, "food", now),
	}

	bills := UpcomingBills(txs, now)

	ids := make([]string, 0, len(bills))
	for _, b := range bills {
		ids = append(ids, b.Transaction.ID)
	}
	assert.Equal(t, []string{"old", "today", "in30"}, ids)
	assert.Equal(t, BillDueToday, bills[1].Status)
	assert.Equal(t, BillDueSoon, bills[2].Status)
}

func TestUpcomingBills_PaidAlwaysLast(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	txs := []entity.Transaction{
		bill("paid-early", now.AddDate(0, 0, -20), true),
		bill("unpaid-late", now.AddDate(0, 0, 25), false),
		bill("unpaid-soon", now.AddDate(0, 0, 1), false),
		bill("paid-soon", now.AddDate(0, 0, 2), true),
	}

	bills := UpcomingBills(txs, now)
	require.Len(t, bills, 4)
	assert.Equal(t, "unpaid-soon", bills[0].Transaction.ID)
	assert.Equal(t, "unpaid-late", bills[1].Transaction.ID)
	assert.Equal(t, "paid-early", bills[2].Transaction.ID)
	assert.Equal(t, "paid-soon", bills[3].Transaction.ID)
}

func TestBillStatusText(t *testing.T) {
	tests := []struct {
		name   string
		bill   Bill
		locale entity.Locale
		want   string
	}{
		{"due today pt", Bill{DiffDays: 0, Status: BillDueToday}, entity.LocalePtBR, "Vence hoje"},
		{"due soon en", Bill{DiffDays: 3, Status: BillDueSoon}, entity.LocaleEnUS, "Due in 3 days"},
		{"overdue zh", Bill{DiffDays: -4, Status: BillOverdue}, entity.LocaleZhCN, "已逾期 4 天"},
		{"unknown locale falls back", Bill{Status: BillPaid}, entity.Locale("fr-FR"), "Paid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bill.StatusText(tt.locale))
		})
	}
}
