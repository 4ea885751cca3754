// Package book is the allowance book a front end talks to: one ledger, one
// savings goal and the owner's name, with every derived figure recomputed
// from the current transactions on each read.
package book

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/pocketbook-dev/pocketbook/internal/export"
	"github.com/pocketbook-dev/pocketbook/internal/ledger"
	"github.com/pocketbook-dev/pocketbook/internal/log"
	"github.com/pocketbook-dev/pocketbook/internal/metrics"
	"github.com/pocketbook-dev/pocketbook/internal/model"
	"github.com/pocketbook-dev/pocketbook/internal/report"
)

var (
	ErrInvalidGoal = errors.New("invalid savings goal")
	ErrEmptyOwner  = errors.New("owner name is empty")
)

// Book holds one session's state. Each method takes the lock, so a
// mutation and the reads that follow it never interleave with another caller.
type Book struct {
	mu        sync.Mutex
	ledger    *ledger.Ledger
	goal      int64
	owner     string
	logger    *log.Logger
	exportLog *log.Logger
}

// Params configures a new Book.
type Params struct {
	Owner  string
	Goal   int64
	Ledger *ledger.Ledger // nil = ledger.New()
	Logger *log.Logger    // nil = log.Discard()
}

// New creates a Book.
func New(params Params) (*Book, error) {
	if err := checkGoal(params.Goal); err != nil {
		return nil, err
	}
	owner := strings.TrimSpace(params.Owner)
	if owner == "" {
		return nil, ErrEmptyOwner
	}

	l := params.Ledger
	if l == nil {
		l = ledger.New()
	}
	logger := params.Logger
	if logger == nil {
		logger = log.Discard()
	}

	return &Book{
		ledger:    l,
		goal:      params.Goal,
		owner:     owner,
		logger:    logger.WithComponent(log.ComponentBook),
		exportLog: logger.WithComponent(log.ComponentExport),
	}, nil
}

// checkGoal allows 0 (no goal) up to ledger.MaxAmount.
func checkGoal(goal int64) error {
	if goal < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidGoal, goal)
	}
	if goal > ledger.MaxAmount {
		return fmt.Errorf("%w: %d exceeds %d", ErrInvalidGoal, goal, ledger.MaxAmount)
	}
	return nil
}

// AddTransaction records income or an expense. magnitude must be >= 0;
// expenses are stored with a negative amount.
func (b *Book) AddTransaction(kind model.Kind, category string, magnitude int64, memo string) (model.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	txn, err := b.ledger.Add(kind, category, magnitude, memo)
	if err != nil {
		b.logger.Warn("rejected transaction",
			log.FieldOperation, log.OpAdd, log.FieldKind, string(kind), log.FieldAmount, magnitude, log.FieldError, err)
		return model.Transaction{}, err
	}
	b.logger.Debug("added transaction",
		log.FieldOperation, log.OpAdd, log.FieldTxnID, txn.ID, log.FieldKind, string(txn.Kind),
		log.FieldCategory, txn.Category, log.FieldAmount, txn.Amount)
	return txn, nil
}

// RemoveTransaction deletes the transaction with the given ID.
func (b *Book) RemoveTransaction(txnID string) (model.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	txn, err := b.ledger.Remove(txnID)
	if err != nil {
		b.logger.Warn("rejected delete", log.FieldOperation, log.OpDelete, log.FieldTxnID, txnID, log.FieldError, err)
		return model.Transaction{}, err
	}
	b.logger.Debug("deleted transaction", log.FieldOperation, log.OpDelete, log.FieldTxnID, txn.ID)
	return txn, nil
}

// RemoveAt deletes the transaction at a position in ListTransactions (0 = newest).
func (b *Book) RemoveAt(index int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.ledger.RemoveAt(index); err != nil {
		b.logger.Warn("rejected delete", log.FieldOperation, log.OpDelete, log.FieldIndex, index, log.FieldError, err)
		return err
	}
	b.logger.Debug("deleted transaction", log.FieldOperation, log.OpDelete, log.FieldIndex, index)
	return nil
}

// ResetLedger drops every transaction. Goal and owner are kept.
func (b *Book) ResetLedger() {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.ledger.Len()
	b.ledger.Clear()
	b.logger.Info("ledger reset", log.FieldOperation, log.OpReset, log.FieldCount, n)
}

// SetSavingsGoal changes the goal. Zero means "no goal".
func (b *Book) SetSavingsGoal(goal int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := checkGoal(goal); err != nil {
		b.logger.Warn("rejected goal", log.FieldOperation, log.OpGoal, log.FieldGoal, goal)
		return err
	}
	b.goal = goal
	b.logger.Debug("savings goal set", log.FieldOperation, log.OpGoal, log.FieldGoal, goal)
	return nil
}

// SetOwnerName changes the owner name used in views and export file names.
func (b *Book) SetOwnerName(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyOwner
	}
	b.owner = name
	b.logger.Debug("owner set", log.FieldOperation, log.OpOwner, log.FieldOwner, name)
	return nil
}

// ListTransactions returns the transactions, newest first.
func (b *Book) ListTransactions() []model.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.All()
}

// TotalIncome is the sum of income amounts.
func (b *Book) TotalIncome() int64 {
	return metrics.TotalIncome(b.ListTransactions())
}

// TotalExpense is the sum of expense amounts (<= 0).
func (b *Book) TotalExpense() int64 {
	return metrics.TotalExpense(b.ListTransactions())
}

// Balance is income plus (negative) expenses.
func (b *Book) Balance() int64 {
	return metrics.Balance(b.ListTransactions())
}

// GoalProgress returns the capped percentage toward the savings goal;
// ok is false when no goal is set.
func (b *Book) GoalProgress() (pct decimal.Decimal, ok bool) {
	txns, goal := b.snapshot()
	return metrics.GoalProgress(metrics.Balance(txns), goal)
}

// RemainingOrExcess reports the distance to the goal or the amount beyond it.
func (b *Book) RemainingOrExcess() metrics.Standing {
	txns, goal := b.snapshot()
	return metrics.GoalStanding(metrics.Balance(txns), goal)
}

// Summary computes all headline figures from a single snapshot.
func (b *Book) Summary() metrics.Summary {
	txns, goal := b.snapshot()
	return metrics.Summarize(txns, goal)
}

// ExpenseByCategory returns spending per category, largest first.
func (b *Book) ExpenseByCategory() []report.CategoryTotal {
	return report.ExpenseByCategory(b.ListTransactions())
}

// ExportTable writes the ledger as a CSV table.
func (b *Book) ExportTable(w io.Writer) error {
	return export.WriteTable(w, b.ListTransactions())
}

// ExportFile writes the ledger to dir/{owner}_allowance-ledger.csv and
// returns the path.
func (b *Book) ExportFile(dir string) (string, error) {
	b.mu.Lock()
	txns, owner := b.ledger.All(), b.owner
	b.mu.Unlock()

	path, err := export.WriteFile(dir, owner, txns)
	if err != nil {
		b.exportLog.Error("export failed", log.FieldOperation, log.OpExport, log.FieldError, err)
		return "", err
	}
	b.exportLog.Info("exported ledger", log.FieldOperation, log.OpExport, log.FieldPath, path, log.FieldCount, len(txns))
	return path, nil
}

// SavingsGoal returns the current goal.
func (b *Book) SavingsGoal() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.goal
}

// OwnerName returns the current owner name.
func (b *Book) OwnerName() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.owner
}

func (b *Book) snapshot() ([]model.Transaction, int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ledger.All(), b.goal
}
