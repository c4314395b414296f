package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cashburn/internal/model"
	"github.com/theirongolddev/cashburn/internal/pipeline"
)

type countingEstimator struct{ calls int }

func (c *countingEstimator) Project(obs []model.Observation, horizon int) ([]model.ProjectionPoint, error) {
	c.calls++
	return []model.ProjectionPoint{{DayOffset: obs[len(obs)-1].DayOffset}}, nil
}

func expense(date string, amount string) model.Expense {
	d, _ := time.ParseInLocation(model.DateLayout, date, time.Local)
	return model.Expense{Date: d, Amount: decimal.RequireFromString(amount), Category: model.CategoryFood}
}

func TestNewSessionsAreDistinct(t *testing.T) {
	a := New(nil)
	b := New(nil)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Zero(t, a.Len())
}

func TestSeedIsCopied(t *testing.T) {
	seed := []model.Expense{expense("2025-01-01", "10")}
	s := New(seed)
	seed[0].Amount = decimal.NewFromInt(99)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "10", s.Expenses()[0].Amount.String())
}

func TestAddThenReport(t *testing.T) {
	s := New(nil)

	r := s.Report(pipeline.Options{})
	assert.True(t, r.Empty())

	s.Add(expense("2025-01-01", "10"))
	r = s.Report(pipeline.Options{})
	assert.Equal(t, 1, r.Summary.ExpenseCount)
	assert.ErrorIs(t, r.ProjectionErr, pipeline.ErrInsufficientData)

	s.Add(expense("2025-01-02", "15"))
	r = s.Report(pipeline.Options{})
	require.NoError(t, r.ProjectionErr)
	assert.Len(t, r.Projection, 31)
}

func TestWithEstimator(t *testing.T) {
	est := &countingEstimator{}
	s := New([]model.Expense{
		expense("2025-01-01", "10"),
		expense("2025-01-03", "10"),
	}, WithEstimator(est))

	s.Report(pipeline.Options{})
	s.Report(pipeline.Options{})
	assert.Equal(t, 2, est.calls)
}
