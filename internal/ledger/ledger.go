// Package ledger holds the in-memory, newest-first list of transactions.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/pocketbook-dev/pocketbook/internal/id"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidIndex  = errors.New("invalid index")
	ErrInvalidKind   = errors.New("invalid kind")
	ErrNotFound      = errors.New("transaction not found")
)

// MaxAmount bounds a single entry so sums over any realistic ledger stay
// well inside int64.
const MaxAmount int64 = 1_000_000_000_000

// Ledger is not safe for concurrent use; book.Book serialises access.
type Ledger struct {
	txns []model.Transaction // newest first
	seq  id.Sequence
	now  func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the clock used to stamp new transactions.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates an empty Ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add records a transaction and puts it at the front of the list.
// magnitude is the unsigned amount the user entered; expenses are stored negated.
// Line breaks in category and memo are normalised to LF.
func (l *Ledger) Add(kind model.Kind, category string, magnitude int64, memo string) (model.Transaction, error) {
	if !kind.Valid() {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if magnitude < 0 {
		return model.Transaction{}, fmt.Errorf("%w: %d is negative", ErrInvalidAmount, magnitude)
	}
	if magnitude > MaxAmount {
		return model.Transaction{}, fmt.Errorf("%w: %d exceeds %d", ErrInvalidAmount, magnitude, MaxAmount)
	}

	amount := magnitude
	if kind == model.KindExpense {
		amount = -magnitude
	}

	txn := model.Transaction{
		ID:        l.seq.Next(),
		Timestamp: l.now().Truncate(time.Second),
		Kind:      kind,
		Category:  model.NormalizeText(category),
		Amount:    amount,
		Memo:      model.NormalizeMemo(memo),
	}

	l.txns = append([]model.Transaction{txn}, l.txns...)
	return txn, nil
}

// RemoveAt deletes the transaction at index (0 = newest).
func (l *Ledger) RemoveAt(index int) error {
	if index < 0 || index >= len(l.txns) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, len(l.txns))
	}
	l.txns = append(l.txns[:index], l.txns[index+1:]...)
	return nil
}

// Remove deletes the transaction with the given ID and returns it.
func (l *Ledger) Remove(txnID string) (model.Transaction, error) {
	i := l.IndexOf(txnID)
	if i < 0 {
		return model.Transaction{}, fmt.Errorf("%w: %q", ErrNotFound, txnID)
	}
	txn := l.txns[i]
	l.txns = append(l.txns[:i], l.txns[i+1:]...)
	return txn, nil
}

// IndexOf returns the current position of txnID, or -1.
// IDs are matched after normalisation, so "t1" finds "T0001".
func (l *Ledger) IndexOf(txnID string) int {
	seq, err := id.ParseTxnID(txnID)
	if err != nil {
		return -1
	}
	want := id.FormatTxnID(seq)
	for i, t := range l.txns {
		if t.ID == want {
			return i
		}
	}
	return -1
}

// Clear drops every transaction. IDs are not reused afterwards.
func (l *Ledger) Clear() {
	l.txns = nil
}

// All returns a copy of the transactions, newest first.
func (l *Ledger) All() []model.Transaction {
	out := make([]model.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.txns)
}
