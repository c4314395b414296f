// Package pipeline orchestrates seed loading, filtering, and metric aggregation.
package pipeline

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/cashburn/internal/model"
)

// Aggregate computes summary statistics across expenses.
func Aggregate(expenses []model.Expense) model.SummaryStats {
	var stats model.SummaryStats
	stats.TotalSpend = decimal.Zero
	if len(expenses) == 0 {
		return stats
	}

	activeDays := make(map[string]struct{})
	stats.FirstDate = expenses[0].Date
	stats.LastDate = expenses[0].Date
	stats.Largest = expenses[0]

	for _, e := range expenses {
		stats.ExpenseCount++
		stats.TotalSpend = stats.TotalSpend.Add(e.Amount)
		activeDays[e.Date.Format(model.DateLayout)] = struct{}{}

		if e.Date.Before(stats.FirstDate) {
			stats.FirstDate = e.Date
		}
		if e.Date.After(stats.LastDate) {
			stats.LastDate = e.Date
		}
		if e.Amount.GreaterThan(stats.Largest.Amount) {
			stats.Largest = e
		}
	}

	stats.ActiveDays = len(activeDays)
	stats.SpanDays = model.DaysBetween(stats.FirstDate, stats.LastDate) + 1

	// Per-active-day and per-expense rates
	stats.PerActiveDay = stats.TotalSpend.Div(decimal.NewFromInt(int64(stats.ActiveDays)))
	stats.PerExpense = stats.TotalSpend.Div(decimal.NewFromInt(int64(stats.ExpenseCount)))

	return stats
}

// AggregateCategories computes per-category totals, sorted by total
// descending. Categories without spend are omitted.
func AggregateCategories(expenses []model.Expense) []model.CategoryStats {
	catMap := make(map[model.Category]*model.CategoryStats)
	total := decimal.Zero

	for _, e := range expenses {
		cs, ok := catMap[e.Category]
		if !ok {
			cs = &model.CategoryStats{Category: e.Category, Total: decimal.Zero}
			catMap[e.Category] = cs
		}
		cs.Total = cs.Total.Add(e.Amount)
		cs.Count++
		total = total.Add(e.Amount)
	}

	cats := make([]model.CategoryStats, 0, len(catMap))
	for _, cs := range catMap {
		if total.IsPositive() {
			cs.SharePercent = cs.Total.Div(total).InexactFloat64() * 100
		}
		cats = append(cats, *cs)
	}
	sort.Slice(cats, func(i, j int) bool {
		if !cats[i].Total.Equal(cats[j].Total) {
			return cats[i].Total.GreaterThan(cats[j].Total)
		}
		return categoryIndex(cats[i].Category) < categoryIndex(cats[j].Category)
	})

	return cats
}

// AggregateDays computes per-day totals with running cumulative spend.
// The result is sorted most recent first.
func AggregateDays(expenses []model.Expense) []model.DailyStats {
	dayMap := make(map[string]*model.DailyStats)

	for _, e := range expenses {
		dayKey := e.Date.Format(model.DateLayout)
		ds, ok := dayMap[dayKey]
		if !ok {
			ds = &model.DailyStats{Date: model.Day(e.Date), Total: decimal.Zero}
			dayMap[dayKey] = ds
		}
		ds.Total = ds.Total.Add(e.Amount)
		ds.Count++
	}

	days := make([]model.DailyStats, 0, len(dayMap))
	for _, ds := range dayMap {
		days = append(days, *ds)
	}

	// Running sum oldest first, then flip to most recent first
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	running := decimal.Zero
	for i := range days {
		running = running.Add(days[i].Total)
		days[i].Cumulative = running
	}
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}

	return days
}

// SortByDateDesc returns a copy of expenses, most recent first. Expenses on
// the same day keep their insertion order.
func SortByDateDesc(expenses []model.Expense) []model.Expense {
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// FilterByTime returns expenses dated within [since, until).
// A zero bound is open.
func FilterByTime(expenses []model.Expense, since, until time.Time) []model.Expense {
	if since.IsZero() && until.IsZero() {
		return expenses
	}

	var result []model.Expense
	for _, e := range expenses {
		if !since.IsZero() && e.Date.Before(since) {
			continue
		}
		if !until.IsZero() && !e.Date.Before(until) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// FilterByCategory returns expenses in the given category. An empty
// category matches everything.
func FilterByCategory(expenses []model.Expense, category model.Category) []model.Expense {
	if category == "" {
		return expenses
	}
	var result []model.Expense
	for _, e := range expenses {
		if e.Category == category {
			result = append(result, e)
		}
	}
	return result
}

// ComparePeriods aggregates the window [since, until) and the window of the
// same number of calendar days immediately before it.
func ComparePeriods(expenses []model.Expense, since, until time.Time) model.PeriodComparison {
	prevSince := since.AddDate(0, 0, -model.DaysBetween(since, until))
	return model.PeriodComparison{
		Current:  Aggregate(FilterByTime(expenses, since, until)),
		Previous: Aggregate(FilterByTime(expenses, prevSince, since)),
	}
}

func categoryIndex(c model.Category) int {
	for i, known := range model.Categories {
		if known == c {
			return i
		}
	}
	return len(model.Categories)
}
