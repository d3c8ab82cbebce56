package report

import (
	"FinanceTracker/internal/entity"
	"sort"
	"strconv"
	"strings"
	"time"
)

const billHorizonDays = 30

type BillStatus string

const (
	BillOverdue  BillStatus = "overdue"
	BillDueToday BillStatus = "due_today"
	BillDueSoon  BillStatus = "due_soon"
	BillPaid     BillStatus = "paid"
)

type Bill struct {
	Transaction entity.Transaction `json:"transaction"`
	DiffDays    int                `json:"diff_days"`
	Status      BillStatus         `json:"status"`
}

// UpcomingBills projects recurring expenses onto today's calendar. Bills due more
// than 30 days ahead are dropped; overdue bills are kept however old. Unpaid bills
// come first, each half ordered by days until due.
func UpcomingBills(txs []entity.Transaction, now time.Time) []Bill {
	today := calendarDay(now)

	bills := make([]Bill, 0)
	for _, tx := range txs {
		if tx.Type != entity.TransactionTypeExpense || tx.Recurrence == nil || tx.Recurrence.DueDate.IsZero() {
			continue
		}

		diffDays := daysBetween(today, calendarDay(tx.Recurrence.DueDate))
		if diffDays > billHorizonDays {
			continue
		}

		bills = append(bills, Bill{
			Transaction: tx,
			DiffDays:    diffDays,
			Status:      classify(diffDays, tx.Recurrence.IsPaid),
		})
	}

	sort.SliceStable(bills, func(i, j int) bool {
		pi, pj := bills[i].Transaction.IsPaid(), bills[j].Transaction.IsPaid()
		if pi != pj {
			return !pi
		}
		return bills[i].DiffDays < bills[j].DiffDays
	})

	return bills
}

func classify(diffDays int, paid bool) BillStatus {
	switch {
	case paid:
		return BillPaid
	case diffDays < 0:
		return BillOverdue
	case diffDays == 0:
		return BillDueToday
	default:
		return BillDueSoon
	}
}

// StatusText renders the bill status in locale.
func (b Bill) StatusText(locale entity.Locale) string {
	switch b.Status {
	case BillPaid:
		return entity.Translate(locale, entity.MsgPaid)
	case BillOverdue:
		return withDays(entity.Translate(locale, entity.MsgOverdueByDays), -b.DiffDays)
	case BillDueToday:
		return entity.Translate(locale, entity.MsgDueToday)
	default:
		return withDays(entity.Translate(locale, entity.MsgDueInDays), b.DiffDays)
	}
}

func withDays(msg string, days int) string {
	return strings.ReplaceAll(msg, "{days}", strconv.Itoa(days))
}

// calendarDay keeps only the wall-clock date of t so that comparisons are between
// dates, not instants.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
