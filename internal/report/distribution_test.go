package report

import (
	"FinanceTracker/internal/entity"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowFor(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// Wednesday
	now := time.Date(2024, time.February, 14, 15, 30, 0, 0, loc)

	month, err := WindowFor(ViewMonth, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, loc), month.Start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999999999, loc), month.End)

	week, err := WindowFor(ViewWeek, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 11, 0, 0, 0, 0, loc), week.Start)
	assert.Equal(t, time.Sunday, week.Start.Weekday())
	assert.Equal(t, time.Date(2024, time.February, 17, 23, 59, 59, 999999999, loc), week.End)
	assert.Equal(t, time.Saturday, week.End.Weekday())

	_, err = WindowFor("year", now)
	assert.ErrorIs(t, err, ErrInvalidViewMode)
}

func TestWindowFor_WeekCrossesMonth(t *testing.T) {
	// Tuesday 2 April 2024, week starts Sunday 31 March
	now := time.Date(2024, time.April, 2, 8, 0, 0, 0, time.UTC)

	week, err := WindowFor(ViewWeek, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), week.Start)
	assert.Equal(t, time.Date(2024, time.April, 6, 23, 59, 59, 999999999, time.UTC), week.End)
}

func TestDistribution(t *testing.T) {
	now := time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC)

	txs := []entity.Transaction{
		tx("1", 5000, entity.TransactionTypeIncome, "salary", now),
		tx("2", 300, entity.TransactionTypeExpense, "food", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)),
		tx("3", 600, entity.TransactionTypeExpense, "housing", time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)),
		tx("4", 100, entity.TransactionTypeExpense, "food", now),
		tx("5", 999, entity.TransactionTypeExpense, "leisure", time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC)),
	}

	shares, window, err := Distribution(txs, ViewMonth, now)
	require.NoError(t, err)
	assert.Equal(t, time.February, window.Start.Month())

	require.Len(t, shares, 2)
	assert.Equal(t, "housing", shares[0].Category)
	assert.Equal(t, 600.0, shares[0].Total)
	assert.Equal(t, 60.0, shares[0].Percentage)
	assert.Equal(t, "food", shares[1].Category)
	assert.Equal(t, 400.0, shares[1].Total)
	assert.Equal(t, 40.0, shares[1].Percentage)
}

func TestDistribution_PercentagesSumToHundred(t *testing.T) {
	now := time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC)
	amounts := []float64{13.37, 0.01, 99.99, 7, 3.33, 250.5}
	categories := []string{"food", "transport", "leisure", "health", "custom_1", "other"}

	var txs []entity.Transaction
	for i, a := range amounts {
		txs = append(txs, tx(string(rune('a'+i)), a, entity.TransactionTypeExpense, categories[i], now))
	}

	shares, _, err := Distribution(txs, ViewWeek, now)
	require.NoError(t, err)
	require.Len(t, shares, len(amounts))

	sum := 0.0
	for _, s := range shares {
		sum += s.Percentage
	}
	assert.True(t, math.Abs(sum-100) < 1e-9, "sum was %v", sum)
}

func TestDistribution_EmptyWindow(t *testing.T) {
	now := time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC)
	txs := []entity.Transaction{
		tx("1", 5000, entity.TransactionTypeIncome, "salary", now),
		tx("2", 50, entity.TransactionTypeExpense, "food", now.AddDate(0, -2, 0)),
	}

	shares, _, err := Distribution(txs, ViewWeek, now)
	require.NoError(t, err)
	assert.NotNil(t, shares)
	assert.Empty(t, shares)
}
