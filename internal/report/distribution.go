package report

import (
	"FinanceTracker/internal/entity"
	"errors"
	"sort"
	"time"
)

type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

var ErrInvalidViewMode = errors.New("view mode must be week or month")

func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewWeek, ViewMonth:
		return ViewMode(s), nil
	case "":
		return ViewMonth, nil
	default:
		return "", ErrInvalidViewMode
	}
}

// Window is an inclusive time range.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// WindowFor returns the calendar month or the Sunday-to-Saturday week holding now,
// in now's location. The end is the last nanosecond of the final day.
func WindowFor(mode ViewMode, now time.Time) (Window, error) {
	loc := now.Location()
	y, m, d := now.Date()

	var start time.Time
	var end time.Time

	switch mode {
	case ViewMonth:
		start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		end = time.Date(y, m+1, 1, 0, 0, 0, 0, loc)
	case ViewWeek:
		start = time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, loc)
		end = time.Date(y, m, d-int(now.Weekday())+7, 0, 0, 0, 0, loc)
	default:
		return Window{}, ErrInvalidViewMode
	}

	return Window{Start: start, End: end.Add(-time.Nanosecond)}, nil
}

type Share struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Distribution splits the expenses inside the window by category. An empty slice
// means there was nothing to chart.
func Distribution(txs []entity.Transaction, mode ViewMode, now time.Time) ([]Share, Window, error) {
	window, err := WindowFor(mode, now)
	if err != nil {
		return nil, Window{}, err
	}

	var inWindow []entity.Transaction
	for _, tx := range txs {
		if tx.Type == entity.TransactionTypeExpense && window.Contains(tx.Date) {
			inWindow = append(inWindow, tx)
		}
	}

	total := sumAmounts(inWindow)
	if total == 0 {
		return []Share{}, window, nil
	}

	index := make(map[string]int)
	byCategory := make([][]entity.Transaction, 0)
	categories := make([]string, 0)
	for _, tx := range inWindow {
		i, ok := index[tx.Category]
		if !ok {
			i = len(categories)
			index[tx.Category] = i
			categories = append(categories, tx.Category)
			byCategory = append(byCategory, nil)
		}
		byCategory[i] = append(byCategory[i], tx)
	}

	shares := make([]Share, 0, len(categories))
	for i, category := range categories {
		categoryTotal := sumAmounts(byCategory[i])
		shares = append(shares, Share{
			Category:   category,
			Total:      categoryTotal,
			Percentage: 100 * categoryTotal / total,
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Total > shares[j].Total
	})

	return shares, window, nil
}
