package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestLedger() *Ledger {
	return New(WithClock(fixedClock(time.Date(2025, 1, 3, 15, 4, 5, 999, time.UTC))))
}

func TestAdd_SignFollowsKind(t *testing.T) {
	l := newTestLedger()

	inc, err := l.Add(model.KindIncome, "Allowance", 100, "weekly")
	require.NoError(t, err)
	assert.Equal(t, int64(100), inc.Amount)

	exp, err := l.Add(model.KindExpense, "Snacks", 40, "")
	require.NoError(t, err)
	assert.Equal(t, int64(-40), exp.Amount)
	assert.Equal(t, model.NoMemo, exp.Memo)

	require.NoError(t, inc.Validate())
	require.NoError(t, exp.Validate())
}

func TestAdd_NewestFirst(t *testing.T) {
	l := newTestLedger()

	first, err := l.Add(model.KindIncome, "Allowance", 500, "")
	require.NoError(t, err)
	second, err := l.Add(model.KindExpense, "Toys", 200, "")
	require.NoError(t, err)

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
	assert.Equal(t, "T0001", first.ID)
	assert.Equal(t, "T0002", second.ID)
}

func TestAdd_TimestampTruncatedToSecond(t *testing.T) {
	l := newTestLedger()
	txn, err := l.Add(model.KindIncome, "Allowance", 1, "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 3, 15, 4, 5, 0, time.UTC), txn.Timestamp)
}

func TestAdd_RejectsNegativeMagnitude(t *testing.T) {
	l := newTestLedger()
	_, err := l.Add(model.KindIncome, "Allowance", 100, "")
	require.NoError(t, err)

	_, err = l.Add(model.KindExpense, "Snacks", -5, "")
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, 1, l.Len(), "rejected add must not mutate")
}

func TestAdd_RejectsAmountAboveMax(t *testing.T) {
	l := newTestLedger()

	_, err := l.Add(model.KindIncome, "Allowance", MaxAmount, "")
	require.NoError(t, err)

	for _, amt := range []int64{MaxAmount + 1, 9223372036854775807} {
		_, err := l.Add(model.KindIncome, "Allowance", amt, "")
		require.ErrorIs(t, err, ErrInvalidAmount, "amount %d", amt)
	}
	assert.Equal(t, 1, l.Len())
}

func TestAdd_NormalisesLineBreaks(t *testing.T) {
	l := newTestLedger()

	txn, err := l.Add(model.KindExpense, "Toys\r\n", 10, "line1\r\nline2")
	require.NoError(t, err)
	assert.Equal(t, "Toys\n", txn.Category)
	assert.Equal(t, "line1\nline2", txn.Memo)
	require.NoError(t, txn.Validate())
}

func TestAdd_RejectsUnknownKind(t *testing.T) {
	l := newTestLedger()
	_, err := l.Add("Refund", "Other", 5, "")
	require.ErrorIs(t, err, ErrInvalidKind)
	assert.Zero(t, l.Len())
}

func TestAdd_AcceptsCategoryOutsideVocabulary(t *testing.T) {
	l := newTestLedger()
	txn, err := l.Add(model.KindExpense, "Stickers", 30, "")
	require.NoError(t, err)
	assert.Equal(t, "Stickers", txn.Category)
}

func TestAdd_ZeroMagnitude(t *testing.T) {
	l := newTestLedger()
	txn, err := l.Add(model.KindExpense, "Other", 0, "")
	require.NoError(t, err)
	assert.Zero(t, txn.Amount)
}

func TestRemoveAt(t *testing.T) {
	l := newTestLedger()
	for _, amt := range []int64{10, 20, 30} {
		_, err := l.Add(model.KindIncome, "Allowance", amt, "")
		require.NoError(t, err)
	}

	// [30, 20, 10] -> remove 20
	require.NoError(t, l.RemoveAt(1))
	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, int64(30), all[0].Amount)
	assert.Equal(t, int64(10), all[1].Amount)
}

func TestRemoveAt_OutOfRange(t *testing.T) {
	l := newTestLedger()

	err := l.RemoveAt(0)
	require.ErrorIs(t, err, ErrInvalidIndex, "empty ledger")

	_, err = l.Add(model.KindIncome, "Allowance", 10, "")
	require.NoError(t, err)

	for _, idx := range []int{-1, 1, 99} {
		before := l.Len()
		err := l.RemoveAt(idx)
		require.ErrorIs(t, err, ErrInvalidIndex, "index %d", idx)
		assert.Equal(t, before, l.Len())
	}
}

func TestRemove_ByID(t *testing.T) {
	l := newTestLedger()
	a, err := l.Add(model.KindIncome, "Allowance", 10, "")
	require.NoError(t, err)
	b, err := l.Add(model.KindExpense, "Snacks", 5, "")
	require.NoError(t, err)

	got, err := l.Remove(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	all := l.All()
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)

	_, err = l.Remove(a.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = l.Remove("garbage")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIndexOf_NormalisesID(t *testing.T) {
	l := newTestLedger()
	_, err := l.Add(model.KindIncome, "Allowance", 10, "")
	require.NoError(t, err)

	assert.Equal(t, 0, l.IndexOf("T0001"))
	assert.Equal(t, 0, l.IndexOf("t1"))
	assert.Equal(t, -1, l.IndexOf("T0002"))
	assert.Equal(t, -1, l.IndexOf("garbage"))
}

func TestClear(t *testing.T) {
	l := newTestLedger()
	_, err := l.Add(model.KindIncome, "Allowance", 10, "")
	require.NoError(t, err)

	l.Clear()
	assert.Empty(t, l.All())
	assert.Zero(t, l.Len())

	// IDs keep counting after a clear.
	txn, err := l.Add(model.KindIncome, "Allowance", 10, "")
	require.NoError(t, err)
	assert.Equal(t, "T0002", txn.ID)
}

func TestAll_ReturnsCopy(t *testing.T) {
	l := newTestLedger()
	_, err := l.Add(model.KindIncome, "Allowance", 10, "")
	require.NoError(t, err)

	all := l.All()
	all[0].Amount = 9999
	assert.Equal(t, int64(10), l.All()[0].Amount)
}
