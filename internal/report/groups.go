package report

import (
	"FinanceTracker/internal/entity"
	"sort"
)

type CategoryGroup struct {
	Category     string               `json:"category"`
	Total        float64              `json:"total"`
	Transactions []entity.Transaction `json:"transactions"`
}

type Groups struct {
	Income  []CategoryGroup `json:"income"`
	Expense []CategoryGroup `json:"expense"`
}

// GroupByCategory partitions txs by type and then by category. Groups are ordered
// by total descending; transactions inside a group by date descending. Ties keep
// the order in which the category first shows up once sorted by date.
func GroupByCategory(txs []entity.Transaction) Groups {
	sorted := make([]entity.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	return Groups{
		Income:  groupType(sorted, entity.TransactionTypeIncome),
		Expense: groupType(sorted, entity.TransactionTypeExpense),
	}
}

func groupType(sorted []entity.Transaction, txType entity.TransactionType) []CategoryGroup {
	index := make(map[string]int)
	groups := make([]CategoryGroup, 0)

	for _, tx := range sorted {
		if tx.Type != txType {
			continue
		}

		i, ok := index[tx.Category]
		if !ok {
			i = len(groups)
			index[tx.Category] = i
			groups = append(groups, CategoryGroup{Category: tx.Category})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}

	for i := range groups {
		groups[i].Total = sumAmounts(groups[i].Transactions)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total > groups[j].Total
	})

	return groups
}
