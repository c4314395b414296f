// Package forecast fits a least-squares line to cumulative spend and
// extrapolates it forward.
package forecast

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/cashburn/internal/model"
)

// DefaultHorizon is the number of days projected past the latest expense.
const DefaultHorizon = 30

var (
	// ErrNoObservations is returned when Fit is given no data.
	ErrNoObservations = errors.New("no observations")
	// ErrDegenerateFit is returned when every observation shares one day
	// offset, leaving the slope undefined.
	ErrDegenerateFit = errors.New("degenerate fit: zero variance in day offset")
)

// Prepare orders expenses by date and turns them into running-sum
// observations. Expenses on the same date keep their relative order, each
// contributing its own observation.
func Prepare(expenses []model.Expense) []model.Observation {
	if len(expenses) == 0 {
		return nil
	}

	sorted := make([]model.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := sorted[0].Date
	obs := make([]model.Observation, len(sorted))
	running := decimal.Zero
	for i, e := range sorted {
		running = running.Add(e.Amount)
		obs[i] = model.Observation{
			DayOffset:  model.DaysBetween(first, e.Date),
			Date:       model.Day(e.Date),
			Cumulative: running,
		}
	}
	return obs
}

// DistinctDays counts the distinct day offsets in obs.
func DistinctDays(obs []model.Observation) int {
	seen := make(map[int]struct{}, len(obs))
	for _, o := range obs {
		seen[o.DayOffset] = struct{}{}
	}
	return len(seen)
}

// Line is a fitted spend = Slope*dayOffset + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at a day offset.
func (l Line) At(dayOffset int) float64 {
	return l.Slope*float64(dayOffset) + l.Intercept
}

// Fit computes the ordinary least-squares line through obs using the
// closed-form solution over centered sums.
func Fit(obs []model.Observation) (Line, error) {
	n := float64(len(obs))
	if n == 0 {
		return Line{}, ErrNoObservations
	}

	var sumX, sumY float64
	for _, o := range obs {
		sumX += float64(o.DayOffset)
		sumY += o.Cumulative.InexactFloat64()
	}
	meanX := sumX / n
	meanY := sumY / n

	var sxx, sxy float64
	for _, o := range obs {
		dx := float64(o.DayOffset) - meanX
		sxx += dx * dx
		sxy += dx * (o.Cumulative.InexactFloat64() - meanY)
	}
	if sxx == 0 {
		return Line{}, ErrDegenerateFit
	}

	slope := sxy / sxx
	return Line{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}

// OLS is the least-squares projection estimator. The zero value is ready
// to use.
type OLS struct{}

// Project fits obs and evaluates the line at the latest observed day offset
// and each of the following horizon days, returning horizon+1 points.
func (OLS) Project(obs []model.Observation, horizon int) ([]model.ProjectionPoint, error) {
	line, err := Fit(obs)
	if err != nil {
		return nil, err
	}
	if horizon < 0 {
		horizon = 0
	}

	origin := obs[0].Date.AddDate(0, 0, -obs[0].DayOffset)
	last := obs[0].DayOffset
	for _, o := range obs[1:] {
		if o.DayOffset > last {
			last = o.DayOffset
		}
	}

	points := make([]model.ProjectionPoint, 0, horizon+1)
	for d := last; d <= last+horizon; d++ {
		points = append(points, model.ProjectionPoint{
			DayOffset: d,
			Date:      origin.AddDate(0, 0, d),
			Spend:     line.At(d),
		})
	}
	return points, nil
}
