package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/cashburn/internal/forecast"
	"github.com/theirongolddev/cashburn/internal/model"
)

var (
	// ErrInsufficientData means the expenses span fewer than two distinct
	// days, so no projection is attempted.
	ErrInsufficientData = errors.New("insufficient data: need expenses on at least two different days")
	// ErrProjectionUnavailable wraps estimator failures.
	ErrProjectionUnavailable = errors.New("projection unavailable")
)

// Estimator turns cumulative-spend observations into projected points.
type Estimator interface {
	Project(obs []model.Observation, horizon int) ([]model.ProjectionPoint, error)
}

// Options controls which expenses a report covers.
type Options struct {
	Days     int            // trailing window in calendar days, 0 = all
	Category model.Category // "" = all categories
	Horizon  int            // projection days past the latest expense, 0 = default
	Now      time.Time      // reference time for the window, zero = time.Now()
}

// Window returns the [since, until) bounds of the trailing window, or zero
// times when no window is set.
func (o Options) Window() (since, until time.Time) {
	if o.Days <= 0 {
		return time.Time{}, time.Time{}
	}
	now := o.Now
	if now.IsZero() {
		now = time.Now()
	}
	until = model.Day(now).AddDate(0, 0, 1)
	since = until.AddDate(0, 0, -o.Days)
	return since, until
}

func (o Options) horizon() int {
	if o.Horizon <= 0 {
		return forecast.DefaultHorizon
	}
	return o.Horizon
}

// Report is everything the presentation surface renders for one pass.
type Report struct {
	Summary    model.SummaryStats
	Previous   model.SummaryStats // preceding window of equal length, if windowed
	Categories []model.CategoryStats
	Days       []model.DailyStats
	Expenses   []model.Expense // most recent first

	Actual        []model.Observation
	Projection    []model.ProjectionPoint
	ProjectionErr error
}

// Empty reports whether the report covers no expenses.
func (r Report) Empty() bool {
	return r.Summary.ExpenseCount == 0
}

// ProjectedTotal returns the final projected cumulative spend.
func (r Report) ProjectedTotal() (float64, bool) {
	if len(r.Projection) == 0 {
		return 0, false
	}
	return r.Projection[len(r.Projection)-1].Spend, true
}

// Build runs one full recomputation pass over expenses. A nil estimator
// uses forecast.OLS.
func Build(expenses []model.Expense, opts Options, est Estimator) Report {
	filtered := FilterByCategory(expenses, opts.Category)

	var r Report
	if since, until := opts.Window(); !since.IsZero() {
		cmp := ComparePeriods(filtered, since, until)
		r.Previous = cmp.Previous
		filtered = FilterByTime(filtered, since, until)
	}

	r.Summary = Aggregate(filtered)
	r.Categories = AggregateCategories(filtered)
	r.Days = AggregateDays(filtered)
	r.Expenses = SortByDateDesc(filtered)
	r.Actual = forecast.Prepare(filtered)

	if forecast.DistinctDays(r.Actual) < 2 {
		r.ProjectionErr = ErrInsufficientData
		return r
	}

	if est == nil {
		est = forecast.OLS{}
	}
	points, err := est.Project(r.Actual, opts.horizon())
	if err != nil {
		r.ProjectionErr = fmt.Errorf("%w: %w", ErrProjectionUnavailable, err)
		return r
	}
	r.Projection = points
	return r
}
