// Package source reads and writes expense records as CSV files.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/cashburn/internal/model"
	"github.com/theirongolddev/cashburn/internal/validation"
)

// Header is the CSV header for expense files.
const Header = "date,amount,category"

const (
	numFields   = 3
	colDate     = 0
	colAmount   = 1
	colCategory = 2
)

// ErrBadHeader is returned when a file does not start with Header.
var ErrBadHeader = errors.New("missing or unexpected header (want " + Header + ")")

// ReadExpenses reads every row from an expense CSV reader. The header row is
// required; each data row is validated.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expense CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !isHeader(records[0]) {
		return nil, ErrBadHeader
	}

	v := validation.Default()
	expenses := make([]model.Expense, 0, len(records)-1)
	for i, rec := range records[1:] {
		e, err := v.ToExpense(validation.ExpenseInput{
			Date:     rec[colDate],
			Amount:   rec[colAmount],
			Category: rec[colCategory],
		})
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// WriteExpenses writes expenses (with header) in the given order.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalExpense converts an expense to its CSV fields.
func MarshalExpense(e model.Expense) []string {
	rec := make([]string, numFields)
	rec[colDate] = e.Date.Format(model.DateLayout)
	rec[colAmount] = e.Amount.StringFixed(2)
	rec[colCategory] = string(e.Category)
	return rec
}

// ReadFile reads expenses from a CSV file on disk.
func ReadFile(path string) ([]model.Expense, error) {
	f, err := os.Open(path) //nolint:gosec // path is supplied by the local user
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	expenses, err := ReadExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return expenses, nil
}

// WriteFile writes expenses to a new CSV file, creating parent directories.
func WriteFile(path string, expenses []model.Expense) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-chosen export path
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := WriteExpenses(f, expenses); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func isHeader(rec []string) bool {
	want := strings.Split(Header, ",")
	for i, col := range want {
		if !strings.EqualFold(strings.TrimSpace(rec[i]), col) {
			return false
		}
	}
	return true
}
