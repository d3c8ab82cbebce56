package report

import (
	"FinanceTracker/internal/entity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCategory(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC) }

	txs := []entity.Transaction{
		tx("1", 5000, entity.TransactionTypeIncome, "salary", day(1)),
		tx("2", 30, entity.TransactionTypeExpense, "food", day(2)),
		tx("3", 1500, entity.TransactionTypeExpense, "housing", day(3)),
		tx("4", 45, entity.TransactionTypeExpense, "food", day(5)),
		tx("5", 200, entity.TransactionTypeIncome, "investments", day(4)),
		tx("6", 12, entity.TransactionTypeExpense, "transport", day(6)),
	}

	groups := GroupByCategory(txs)

	require.Len(t, groups.Income, 2)
	assert.Equal(t, "salary", groups.Income[0].Category)
	assert.Equal(t, "investments", groups.Income[1].Category)

	require.Len(t, groups.Expense, 3)
	assert.Equal(t, "housing", groups.Expense[0].Category)
	assert.Equal(t, "food", groups.Expense[1].Category)
	assert.Equal(t, 75.0, groups.Expense[1].Total)
	assert.Equal(t, "transport", groups.Expense[2].Category)

	food := groups.Expense[1].Transactions
	require.Len(t, food, 2)
	assert.Equal(t, "4", food[0].ID, "newest first")
	assert.Equal(t, "2", food[1].ID)
}

func TestGroupByCategory_IsPartition(t *testing.T) {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	categories := []string{"food", "transport", "other", "custom_1"}

	var txs []entity.Transaction
	for i := 0; i < 40; i++ {
		txType := entity.TransactionTypeExpense
		if i%3 == 0 {
			txType = entity.TransactionTypeIncome
		}
		txs = append(txs, tx(string(rune('a'+i%26))+string(rune('A'+i/26)), float64(i+1), txType, categories[i%len(categories)], base.Add(time.Duration(i%7)*24*time.Hour)))
	}

	groups := GroupByCategory(txs)

	seen := make(map[string]int)
	for _, list := range [][]CategoryGroup{groups.Income, groups.Expense} {
		for _, g := range list {
			for _, item := range g.Transactions {
				assert.Equal(t, g.Category, item.Category)
				seen[item.ID]++
			}
		}
	}

	assert.Len(t, seen, len(txs))
	for id, n := range seen {
		assert.Equal(t, 1, n, "transaction %s appears more than once", id)
	}

	for _, list := range [][]CategoryGroup{groups.Income, groups.Expense} {
		for i := 1; i < len(list); i++ {
			assert.GreaterOrEqual(t, list[i-1].Total, list[i].Total)
		}
	}
}

func TestGroupByCategory_DoesNotReorderInput(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC) }
	txs := []entity.Transaction{
		tx("1", 10, entity.TransactionTypeExpense, "food", day(1)),
		tx("2", 10, entity.TransactionTypeExpense, "food", day(9)),
	}

	GroupByCategory(txs)

	assert.Equal(t, "1", txs[0].ID)
	assert.Equal(t, "2", txs[1].ID)
}
