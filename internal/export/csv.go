package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// Header is the first row of an exported table.
const Header = "Date,Kind,Category,Amount,Memo"

// DateFormat is the layout of the Date column.
const DateFormat = "2006-01-02 15:04:05"

// bom lets spreadsheet apps detect UTF-8.
var bom = []byte("\ufeff")

const (
	numFields   = 5
	colDate     = 0
	colKind     = 1
	colCategory = 2
	colAmount   = 3
	colMemo     = 4
)

// WriteTable writes a BOM, the header and one row per transaction, in order.
// Every transaction must pass Validate, which keeps CR out of text fields:
// CSV readers fold a quoted CRLF into LF, so such rows would not read back as written.
func WriteTable(w io.Writer, txns []model.Transaction) error {
	if _, err := w.Write(bom); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := txn.Validate(); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := cw.Write(MarshalRow(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadTable parses a table written by WriteTable. Dates are read in the
// local time zone; IDs are not part of the table and come back empty.
func ReadTable(r io.Reader) ([]model.Transaction, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		if _, err := br.Discard(len(bom)); err != nil {
			return nil, fmt.Errorf("skipping BOM: %w", err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if !slices.Equal(records[0], strings.Split(Header, ",")) {
		return nil, fmt.Errorf("unexpected header %q", strings.Join(records[0], ","))
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// MarshalRow converts a Transaction to a CSV row.
func MarshalRow(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Timestamp.Format(DateFormat)
	row[colKind] = string(txn.Kind)
	row[colCategory] = txn.Category
	row[colAmount] = strconv.FormatInt(txn.Amount, 10)
	row[colMemo] = txn.Memo
	return row
}

// UnmarshalRow converts a CSV row to a Transaction and checks that its
// kind and amount sign agree.
func UnmarshalRow(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.ParseInLocation(DateFormat, record[colDate], time.Local)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := strconv.ParseInt(record[colAmount], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	txn := model.Transaction{
		Timestamp: ts,
		Kind:      model.Kind(record[colKind]),
		Category:  record[colCategory],
		Amount:    amount,
		Memo:      record[colMemo],
	}
	if err := txn.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}
