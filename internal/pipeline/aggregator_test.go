package pipeline

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cashburn/internal/model"
)

var day0 = time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)

func exp(offset int, amount string, cat model.Category) model.Expense {
	return model.Expense{
		Date:     day0.AddDate(0, 0, offset),
		Amount:   decimal.RequireFromString(amount),
		Category: cat,
	}
}

func randomLedger(f *gofakeit.Faker, n int) []model.Expense {
	out := make([]model.Expense, n)
	for i := range out {
		cents := int64(f.IntRange(1, 500000))
		out[i] = model.Expense{
			Date:     day0.AddDate(0, 0, f.IntRange(0, 90)),
			Amount:   decimal.New(cents, -2),
			Category: model.Categories[f.IntRange(0, len(model.Categories)-1)],
		}
	}
	return out
}

func TestAggregate(t *testing.T) {
	stats := Aggregate([]model.Expense{
		exp(0, "100.00", model.CategoryFood),
		exp(0, "50.50", model.CategoryTravel),
		exp(4, "1200", model.CategoryRent),
	})

	assert.True(t, stats.TotalSpend.Equal(decimal.RequireFromString("1350.50")))
	assert.Equal(t, 3, stats.ExpenseCount)
	assert.Equal(t, 2, stats.ActiveDays)
	assert.Equal(t, 5, stats.SpanDays)
	assert.True(t, stats.FirstDate.Equal(day0))
	assert.True(t, stats.LastDate.Equal(day0.AddDate(0, 0, 4)))
	assert.True(t, stats.PerActiveDay.Equal(decimal.RequireFromString("675.25")))
	assert.Equal(t, model.CategoryRent, stats.Largest.Category)
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)
	assert.Equal(t, 0, stats.ExpenseCount)
	assert.True(t, stats.TotalSpend.IsZero())
	assert.True(t, stats.FirstDate.IsZero())
}

func TestAggregateCategoriesOrderAndShare(t *testing.T) {
	cats := AggregateCategories([]model.Expense{
		exp(0, "25", model.CategoryFood),
		exp(1, "50", model.CategoryRent),
		exp(2, "25", model.CategoryTravel),
	})

	require.Len(t, cats, 3)
	assert.Equal(t, model.CategoryRent, cats[0].Category)
	assert.InDelta(t, 50.0, cats[0].SharePercent, 1e-9)
	// equal totals fall back to form order
	assert.Equal(t, model.CategoryFood, cats[1].Category)
	assert.Equal(t, model.CategoryTravel, cats[2].Category)
}

func TestCategorySumEqualsTotal(t *testing.T) {
	f := gofakeit.New(7)
	for round := 0; round < 100; round++ {
		ledger := randomLedger(f, f.IntRange(1, 60))

		total := Aggregate(ledger).TotalSpend
		sum := decimal.Zero
		share := 0.0
		for _, cs := range AggregateCategories(ledger) {
			sum = sum.Add(cs.Total)
			share += cs.SharePercent
		}

		assert.True(t, sum.Equal(total), "round %d: %s != %s", round, sum, total)
		assert.InDelta(t, 100.0, share, 1e-6)
	}
}

func TestAggregateDaysCumulative(t *testing.T) {
	days := AggregateDays([]model.Expense{
		exp(2, "5", model.CategoryFood),
		exp(0, "10", model.CategoryFood),
		exp(0, "15", model.CategoryOther),
	})

	require.Len(t, days, 2)
	assert.True(t, days[0].Date.Equal(day0.AddDate(0, 0, 2)))
	assert.True(t, days[0].Cumulative.Equal(decimal.NewFromInt(30)))
	assert.True(t, days[1].Total.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 2, days[1].Count)
	assert.True(t, days[1].Cumulative.Equal(decimal.NewFromInt(25)))
}

func TestSortByDateDescIsStable(t *testing.T) {
	in := []model.Expense{
		exp(0, "1", model.CategoryFood),
		exp(1, "2", model.CategoryFood),
		exp(0, "3", model.CategoryFood),
	}
	out := SortByDateDesc(in)

	require.Len(t, out, 3)
	assert.Equal(t, "2", out[0].Amount.String())
	assert.Equal(t, "1", out[1].Amount.String())
	assert.Equal(t, "3", out[2].Amount.String())
	assert.Equal(t, "1", in[0].Amount.String(), "input must not be reordered")
}

func TestFilters(t *testing.T) {
	in := []model.Expense{
		exp(0, "1", model.CategoryFood),
		exp(5, "2", model.CategoryRent),
		exp(10, "3", model.CategoryFood),
	}

	got := FilterByTime(in, day0.AddDate(0, 0, 1), day0.AddDate(0, 0, 10))
	require.Len(t, got, 1)
	assert.Equal(t, model.CategoryRent, got[0].Category)

	assert.Len(t, FilterByTime(in, time.Time{}, time.Time{}), 3)
	assert.Len(t, FilterByCategory(in, model.CategoryFood), 2)
	assert.Len(t, FilterByCategory(in, ""), 3)
	assert.Empty(t, FilterByCategory(in, model.CategoryShopping))
}

func TestComparePeriods(t *testing.T) {
	in := []model.Expense{
		exp(0, "10", model.CategoryFood),
		exp(3, "20", model.CategoryFood),
		exp(8, "40", model.CategoryFood),
	}
	cmp := ComparePeriods(in, day0.AddDate(0, 0, 5), day0.AddDate(0, 0, 10))

	assert.True(t, cmp.Current.TotalSpend.Equal(decimal.NewFromInt(40)))
	assert.True(t, cmp.Previous.TotalSpend.Equal(decimal.NewFromInt(30)))
}

func TestComparePeriodsAcrossDSTChange(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks moved forward on 2025-03-09, so this week is 167 hours long.
	since := time.Date(2025, 3, 3, 0, 0, 0, 0, ny)
	until := time.Date(2025, 3, 10, 0, 0, 0, 0, ny)
	in := []model.Expense{
		{Date: time.Date(2025, 2, 24, 0, 0, 0, 0, ny), Amount: decimal.NewFromInt(7), Category: model.CategoryFood},
		{Date: time.Date(2025, 2, 23, 0, 0, 0, 0, ny), Amount: decimal.NewFromInt(100), Category: model.CategoryFood},
		{Date: time.Date(2025, 3, 9, 0, 0, 0, 0, ny), Amount: decimal.NewFromInt(20), Category: model.CategoryFood},
	}

	cmp := ComparePeriods(in, since, until)
	assert.True(t, cmp.Current.TotalSpend.Equal(decimal.NewFromInt(20)))
	assert.True(t, cmp.Previous.TotalSpend.Equal(decimal.NewFromInt(7)), "previous: %s", cmp.Previous.TotalSpend)
}
