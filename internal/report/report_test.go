package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func expense(category string, magnitude int64) model.Transaction {
	return model.Transaction{Kind: model.KindExpense, Category: category, Amount: -magnitude, Memo: model.NoMemo}
}

func income(category string, amount int64) model.Transaction {
	return model.Transaction{Kind: model.KindIncome, Category: category, Amount: amount, Memo: model.NoMemo}
}

func TestExpenseByCategory_MergesAndSorts(t *testing.T) {
	txns := []model.Transaction{
		expense("Snacks", 30),
		expense("Toys", 70),
		expense("Snacks", 20),
	}

	got := ExpenseByCategory(txns)
	assert.Equal(t, []CategoryTotal{
		{Category: "Toys", Total: 70},
		{Category: "Snacks", Total: 50},
	}, got)
}

func TestExpenseByCategory_IgnoresIncome(t *testing.T) {
	txns := []model.Transaction{
		income("Other", 1000),
		expense("Other", 10),
	}

	got := ExpenseByCategory(txns)
	require.Len(t, got, 1)
	assert.Equal(t, CategoryTotal{Category: "Other", Total: 10}, got[0])
}

func TestExpenseByCategory_NoExpenses(t *testing.T) {
	got := ExpenseByCategory([]model.Transaction{income("Allowance", 500)})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = ExpenseByCategory(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExpenseByCategory_ExactMatch(t *testing.T) {
	got := ExpenseByCategory([]model.Transaction{
		expense("Snacks", 5),
		expense("snacks", 5),
		expense("おかし", 5),
	})
	assert.Len(t, got, 3, "no case folding or normalisation")
}

func TestExpenseByCategory_Deterministic(t *testing.T) {
	txns := []model.Transaction{
		expense("Games", 50),
		expense("Toys", 50),
		expense("Books-or-Comics", 50),
		expense("Snacks", 80),
	}

	first := ExpenseByCategory(txns)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExpenseByCategory(txns))
	}
	assert.Equal(t, "Snacks", first[0].Category)
}

func TestShare(t *testing.T) {
	totals := ExpenseByCategory([]model.Transaction{
		expense("Toys", 70),
		expense("Snacks", 30),
	})
	sum := ExpenseTotal(totals)
	assert.Equal(t, int64(100), sum)
	assert.True(t, totals[0].Share(sum).Equal(decimal.NewFromInt(70)))
	assert.True(t, totals[1].Share(sum).Equal(decimal.NewFromInt(30)))
	assert.True(t, totals[0].Share(0).IsZero())
}
