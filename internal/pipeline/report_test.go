package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cashburn/internal/forecast"
	"github.com/theirongolddev/cashburn/internal/model"
)

type spyEstimator struct {
	calls   int
	horizon int
	err     error
}

func (s *spyEstimator) Project(obs []model.Observation, horizon int) ([]model.ProjectionPoint, error) {
	s.calls++
	s.horizon = horizon
	if s.err != nil {
		return nil, s.err
	}
	return forecast.OLS{}.Project(obs, horizon)
}

func TestBuildEmptyLedger(t *testing.T) {
	spy := &spyEstimator{}
	r := Build(nil, Options{}, spy)

	assert.True(t, r.Empty())
	assert.ErrorIs(t, r.ProjectionErr, ErrInsufficientData)
	assert.Zero(t, spy.calls)
	_, ok := r.ProjectedTotal()
	assert.False(t, ok)
}

func TestBuildSingleDaySkipsEstimator(t *testing.T) {
	spy := &spyEstimator{}
	r := Build([]model.Expense{
		exp(0, "10", model.CategoryFood),
		exp(0, "20", model.CategoryRent),
		exp(0, "30", model.CategoryOther),
	}, Options{}, spy)

	assert.ErrorIs(t, r.ProjectionErr, ErrInsufficientData)
	assert.Zero(t, spy.calls)
	assert.Empty(t, r.Projection)
	assert.Equal(t, 3, r.Summary.ExpenseCount)
	assert.Len(t, r.Actual, 3)
}

func TestBuildProjects(t *testing.T) {
	spy := &spyEstimator{}
	r := Build([]model.Expense{
		exp(0, "10", model.CategoryFood),
		exp(1, "10", model.CategoryFood),
		exp(2, "10", model.CategoryFood),
	}, Options{}, spy)

	require.NoError(t, r.ProjectionErr)
	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, forecast.DefaultHorizon, spy.horizon)
	require.Len(t, r.Projection, 31)

	total, ok := r.ProjectedTotal()
	require.True(t, ok)
	assert.InDelta(t, 330.0, total, 1e-9)
	assert.True(t, r.Projection[0].Date.Equal(day0.AddDate(0, 0, 2)))
}

func TestBuildCustomHorizon(t *testing.T) {
	r := Build([]model.Expense{
		exp(0, "10", model.CategoryFood),
		exp(3, "10", model.CategoryFood),
	}, Options{Horizon: 7}, nil)

	require.NoError(t, r.ProjectionErr)
	assert.Len(t, r.Projection, 8)
}

func TestBuildWrapsEstimatorFailure(t *testing.T) {
	spy := &spyEstimator{err: forecast.ErrDegenerateFit}
	r := Build([]model.Expense{
		exp(0, "10", model.CategoryFood),
		exp(1, "10", model.CategoryFood),
	}, Options{}, spy)

	assert.True(t, errors.Is(r.ProjectionErr, ErrProjectionUnavailable))
	assert.True(t, errors.Is(r.ProjectionErr, forecast.ErrDegenerateFit))
	assert.Empty(t, r.Projection)
}

func TestBuildCategoryAndWindow(t *testing.T) {
	in := []model.Expense{
		exp(0, "100", model.CategoryRent),
		exp(8, "10", model.CategoryFood),
		exp(9, "20", model.CategoryFood),
		exp(9, "5", model.CategoryTravel),
	}
	opts := Options{Days: 5, Category: model.CategoryFood, Now: day0.AddDate(0, 0, 9)}
	r := Build(in, opts, nil)

	assert.Equal(t, 2, r.Summary.ExpenseCount)
	require.Len(t, r.Categories, 1)
	assert.Equal(t, model.CategoryFood, r.Categories[0].Category)
	require.Len(t, r.Expenses, 2)
	assert.Equal(t, "20", r.Expenses[0].Amount.String())
	assert.NoError(t, r.ProjectionErr)
}

func TestOptionsWindow(t *testing.T) {
	since, until := Options{}.Window()
	assert.True(t, since.IsZero())
	assert.True(t, until.IsZero())

	since, until = Options{Days: 7, Now: day0.Add(15 * 3600e9)}.Window()
	assert.True(t, until.Equal(day0.AddDate(0, 0, 1)))
	assert.True(t, since.Equal(day0.AddDate(0, 0, -6)))
}
