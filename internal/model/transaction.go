package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind says whether a transaction brought money in or spent it.
type Kind string

const (
	KindIncome  Kind = "Income"
	KindExpense Kind = "Expense"
)

// NoMemo is stored in place of an empty memo.
const NoMemo = "-"

// ParseKind accepts "income"/"expense" in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return KindIncome, nil
	case "expense":
		return KindExpense, nil
	}
	return "", fmt.Errorf("unknown kind %q", s)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is one recorded income or expense event.
type Transaction struct {
	ID        string    // "T0001"; empty for rows read back from an export
	Timestamp time.Time // second precision, set on insertion
	Kind      Kind
	Category  string
	Amount    int64  // positive = income, negative = expense
	Memo      string // NoMemo when the user left it blank
}

// Magnitude returns the unsigned amount.
func (t Transaction) Magnitude() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// Validate checks that kind and amount sign agree and the memo is set.
func (t Transaction) Validate() error {
	switch t.Kind {
	case KindIncome:
		if t.Amount < 0 {
			return fmt.Errorf("income amount %d is negative", t.Amount)
		}
	case KindExpense:
		if t.Amount > 0 {
			return fmt.Errorf("expense amount %d is positive", t.Amount)
		}
	default:
		return fmt.Errorf("unknown kind %q", t.Kind)
	}
	if t.Memo == "" {
		return fmt.Errorf("memo is empty, want %q", NoMemo)
	}
	if strings.ContainsRune(t.Memo, '\r') || strings.ContainsRune(t.Category, '\r') {
		return errors.New("memo and category must not contain carriage returns")
	}
	return nil
}

// NormalizeText turns CRLF and lone CR line breaks into LF. CSV readers fold
// a quoted CRLF into LF, so stored text never carries CR.
func NormalizeText(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}

// NormalizeMemo normalises line breaks and maps a blank memo to NoMemo.
func NormalizeMemo(memo string) string {
	memo = NormalizeText(memo)
	if strings.TrimSpace(memo) == "" {
		return NoMemo
	}
	return memo
}
