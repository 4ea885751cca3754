package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix starts every transaction ID.
const Prefix = "T"

// FormatTxnID returns a transaction ID like "T0001".
func FormatTxnID(seq int) string {
	return fmt.Sprintf("%s%04d", Prefix, seq)
}

// ParseTxnID parses "T0001" into its sequence number.
func ParseTxnID(id string) (int, error) {
	rest, ok := strings.CutPrefix(strings.ToUpper(strings.TrimSpace(id)), Prefix)
	if !ok || rest == "" {
		return 0, fmt.Errorf("invalid transaction ID format: %q", id)
	}

	seq, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid sequence in transaction ID %q: %w", id, err)
	}
	if seq <= 0 {
		return 0, fmt.Errorf("invalid sequence in transaction ID %q: must be positive", id)
	}
	return seq, nil
}

// Sequence hands out increasing transaction IDs. The zero value starts at T0001.
type Sequence struct {
	last int
}

// Next returns the next unused ID.
func (s *Sequence) Next() string {
	s.last++
	return FormatTxnID(s.last)
}
