// Package ledger holds the in-memory expense ledger owned by one session.
package ledger

import "github.com/theirongolddev/cashburn/internal/model"

// Ledger is an insertion-ordered sequence of expense records.
// It is not safe for concurrent use; a session touches it from one goroutine.
type Ledger struct {
	expenses []model.Expense
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// NewFrom returns a ledger seeded with the given records, in order.
func NewFrom(seed []model.Expense) *Ledger {
	l := &Ledger{expenses: make([]model.Expense, 0, len(seed))}
	for _, e := range seed {
		l.Add(e)
	}
	return l
}

// Add appends a record. Records are assumed validated upstream.
func (l *Ledger) Add(e model.Expense) {
	e.Date = model.Day(e.Date)
	l.expenses = append(l.expenses, e)
}

// All returns a copy of the records in insertion order.
func (l *Ledger) All() []model.Expense {
	out := make([]model.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.expenses)
}
