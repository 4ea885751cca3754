// Package report aggregates expenses by category.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// CategoryTotal is the spent magnitude for one category.
type CategoryTotal struct {
	Category string
	Total    int64 // always >= 0
}

// Share returns this category's percentage of total, rounded to one place.
// A zero total yields zero.
func (c CategoryTotal) Share(total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(c.Total).Mul(decimal.NewFromInt(100)).DivRound(decimal.NewFromInt(total), 1)
}

// ExpenseByCategory groups expense transactions by exact category name and
// sums their magnitudes, largest first. Equal totals keep the order in which
// the category first appears in txns. The result is empty, not nil, when
// there are no expenses.
func ExpenseByCategory(txns []model.Transaction) []CategoryTotal {
	totals := []CategoryTotal{}
	index := make(map[string]int)
	for _, t := range txns {
		if t.Kind != model.KindExpense {
			continue
		}
		i, seen := index[t.Category]
		if !seen {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, CategoryTotal{Category: t.Category})
		}
		totals[i].Total += t.Magnitude()
	}

	sort.SliceStable(totals, func(a, b int) bool {
		return totals[a].Total > totals[b].Total
	})
	return totals
}

// ExpenseTotal sums the category totals.
func ExpenseTotal(totals []CategoryTotal) int64 {
	var sum int64
	for _, c := range totals {
		sum += c.Total
	}
	return sum
}
