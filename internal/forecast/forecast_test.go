package forecast

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cashburn/internal/model"
)

var day0 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)

func spend(offset int, amount string) model.Expense {
	return model.Expense{
		Date:     day0.AddDate(0, 0, offset),
		Amount:   decimal.RequireFromString(amount),
		Category: model.CategoryFood,
	}
}

func randomExpenses(f *gofakeit.Faker, n int) []model.Expense {
	out := make([]model.Expense, n)
	for i := range out {
		amt := decimal.NewFromFloat(f.Float64Range(0.01, 5000)).Round(2)
		if !amt.IsPositive() {
			amt = decimal.RequireFromString("0.01")
		}
		out[i] = model.Expense{
			Date:     day0.AddDate(0, 0, f.IntRange(0, 120)),
			Amount:   amt,
			Category: model.Categories[f.IntRange(0, len(model.Categories)-1)],
		}
	}
	return out
}

func TestPrepareCumulativeIsMonotonic(t *testing.T) {
	f := gofakeit.New(42)
	for round := 0; round < 50; round++ {
		obs := Prepare(randomExpenses(f, f.IntRange(1, 40)))
		require.NotEmpty(t, obs)
		assert.Equal(t, 0, obs[0].DayOffset)
		for i := 1; i < len(obs); i++ {
			assert.False(t, obs[i].Cumulative.LessThan(obs[i-1].Cumulative),
				"round %d: cumulative decreased at %d", round, i)
			assert.GreaterOrEqual(t, obs[i].DayOffset, obs[i-1].DayOffset)
		}
	}
}

func TestPrepareOrdersByDate(t *testing.T) {
	obs := Prepare([]model.Expense{
		spend(3, "5"),
		spend(0, "10"),
		spend(1, "20"),
	})

	require.Len(t, obs, 3)
	assert.Equal(t, []int{0, 1, 3}, []int{obs[0].DayOffset, obs[1].DayOffset, obs[2].DayOffset})
	assert.Equal(t, "10", obs[0].Cumulative.String())
	assert.Equal(t, "30", obs[1].Cumulative.String())
	assert.Equal(t, "35", obs[2].Cumulative.String())
}

func TestPrepareEmpty(t *testing.T) {
	assert.Nil(t, Prepare(nil))
}

func TestDistinctDays(t *testing.T) {
	obs := Prepare([]model.Expense{spend(0, "1"), spend(0, "2"), spend(4, "3")})
	assert.Equal(t, 2, DistinctDays(obs))
}

func TestTwoPointFitIsExact(t *testing.T) {
	obs := Prepare([]model.Expense{spend(0, "10"), spend(1, "20")})

	line, err := Fit(obs)
	require.NoError(t, err)
	assert.InDelta(t, 10, line.At(0), 1e-9)
	assert.InDelta(t, 30, line.At(1), 1e-9)
	assert.InDelta(t, 50, line.At(2), 1e-9)
}

func TestProjectCollinearExtrapolates(t *testing.T) {
	// Cumulative 10, 20, 30 on days 0..2 lies on spend = 10*d + 10.
	obs := Prepare([]model.Expense{spend(0, "10"), spend(1, "10"), spend(2, "10")})

	points, err := OLS{}.Project(obs, DefaultHorizon)
	require.NoError(t, err)
	require.Len(t, points, 31)

	assert.Equal(t, 2, points[0].DayOffset)
	assert.Equal(t, 32, points[30].DayOffset)
	for _, p := range points {
		assert.InDelta(t, 10*float64(p.DayOffset)+10, p.Spend, 1e-9)
	}
	assert.InDelta(t, 330, points[30].Spend, 1e-9)
	assert.True(t, points[30].Date.Equal(day0.AddDate(0, 0, 32)))
}

func TestProjectIsIdempotent(t *testing.T) {
	f := gofakeit.New(7)
	obs := Prepare(randomExpenses(f, 25))
	if DistinctDays(obs) < 2 {
		t.Skip("random ledger collapsed to one day")
	}

	first, err := OLS{}.Project(obs, DefaultHorizon)
	require.NoError(t, err)
	second, err := OLS{}.Project(obs, DefaultHorizon)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFitDegenerate(t *testing.T) {
	obs := Prepare([]model.Expense{spend(0, "10"), spend(0, "15")})

	_, err := Fit(obs)
	assert.ErrorIs(t, err, ErrDegenerateFit)

	_, err = OLS{}.Project(obs, DefaultHorizon)
	assert.ErrorIs(t, err, ErrDegenerateFit)
}

func TestFitEmpty(t *testing.T) {
	_, err := Fit(nil)
	assert.ErrorIs(t, err, ErrNoObservations)
}

func TestProjectAllowsNegativeSpend(t *testing.T) {
	// A steep early spike followed by a small purchase fits a falling line.
	obs := []model.Observation{
		{DayOffset: 0, Date: day0, Cumulative: decimal.NewFromInt(100)},
		{DayOffset: 1, Date: day0.AddDate(0, 0, 1), Cumulative: decimal.NewFromInt(10)},
	}

	points, err := OLS{}.Project(obs, DefaultHorizon)
	require.NoError(t, err)
	assert.Less(t, points[len(points)-1].Spend, 0.0)
}
