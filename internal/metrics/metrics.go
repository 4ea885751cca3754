// Package metrics derives balances and savings-goal progress from a
// snapshot of transactions. Nothing is cached; every call rescans.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

var hundred = decimal.NewFromInt(100)

// TotalIncome sums the amounts of income transactions.
func TotalIncome(txns []model.Transaction) int64 {
	return sumKind(txns, model.KindIncome)
}

// TotalExpense sums the amounts of expense transactions. The result is <= 0.
func TotalExpense(txns []model.Transaction) int64 {
	return sumKind(txns, model.KindExpense)
}

// Balance is the net of all signed amounts.
func Balance(txns []model.Transaction) int64 {
	return TotalIncome(txns) + TotalExpense(txns)
}

func sumKind(txns []model.Transaction, kind model.Kind) int64 {
	var total int64
	for _, t := range txns {
		if t.Kind == kind {
			total += t.Amount
		}
	}
	return total
}

// GoalProgress returns balance as a percentage of goal, capped at 100 and
// rounded to two places. ok is false when goal <= 0: there is no
// meaningful percentage, which is not the same as 0%.
func GoalProgress(balance, goal int64) (pct decimal.Decimal, ok bool) {
	if goal <= 0 {
		return decimal.Zero, false
	}
	pct = decimal.NewFromInt(balance).Mul(hundred).DivRound(decimal.NewFromInt(goal), 2)
	return decimal.Min(pct, hundred), true
}

// Standing says where the balance sits relative to the goal.
type Standing struct {
	Applicable bool  // false when no goal is set
	Reached    bool  // balance >= goal
	Remaining  int64 // goal - balance, set only when not reached
	Excess     int64 // balance - goal, set only when reached
}

// GoalStanding reports the amount still missing, or the amount saved beyond the goal.
func GoalStanding(balance, goal int64) Standing {
	if goal <= 0 {
		return Standing{}
	}
	if remaining := goal - balance; remaining > 0 {
		return Standing{Applicable: true, Remaining: remaining}
	}
	return Standing{Applicable: true, Reached: true, Excess: balance - goal}
}

// Summary bundles every derived figure a view needs.
type Summary struct {
	Count        int
	TotalIncome  int64
	TotalExpense int64
	Balance      int64
	Goal         int64
	Progress     decimal.Decimal
	HasProgress  bool
	Standing     Standing
}

// Summarize computes a Summary for txns against goal.
func Summarize(txns []model.Transaction, goal int64) Summary {
	income := TotalIncome(txns)
	expense := TotalExpense(txns)
	balance := income + expense
	pct, ok := GoalProgress(balance, goal)
	return Summary{
		Count:        len(txns),
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      balance,
		Goal:         goal,
		Progress:     pct,
		HasProgress:  ok,
		Standing:     GoalStanding(balance, goal),
	}
}
