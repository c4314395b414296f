// Package session scopes one user's ledger to a single dashboard run or
// CLI invocation.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/cashburn/internal/ledger"
	"github.com/theirongolddev/cashburn/internal/model"
	"github.com/theirongolddev/cashburn/internal/pipeline"
)

// Session owns exactly one ledger. It is not safe for concurrent use; the
// owning update loop is the only caller.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	ledger    *ledger.Ledger
	estimator pipeline.Estimator
}

// Option configures a Session.
type Option func(*Session)

// WithEstimator replaces the default OLS estimator.
func WithEstimator(est pipeline.Estimator) Option {
	return func(s *Session) { s.estimator = est }
}

// New starts a session whose ledger is seeded with the given expenses.
func New(seed []model.Expense, opts ...Option) *Session {
	s := &Session{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		ledger:    ledger.NewFrom(seed),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends an expense to the session's ledger.
func (s *Session) Add(e model.Expense) {
	s.ledger.Add(e)
}

// Expenses returns the ledger contents in insertion order.
func (s *Session) Expenses() []model.Expense {
	return s.ledger.All()
}

// Len returns the number of expenses logged so far.
func (s *Session) Len() int {
	return s.ledger.Len()
}

// Report recomputes every derived view from the current ledger.
func (s *Session) Report(opts pipeline.Options) pipeline.Report {
	return pipeline.Build(s.ledger.All(), opts, s.estimator)
}
