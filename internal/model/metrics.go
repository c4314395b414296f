package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryStats holds the top-level aggregate across all expenses.
type SummaryStats struct {
	TotalSpend   decimal.Decimal
	ExpenseCount int
	ActiveDays   int
	FirstDate    time.Time
	LastDate     time.Time
	SpanDays     int // calendar days from first to last expense, inclusive

	PerActiveDay decimal.Decimal
	PerExpense   decimal.Decimal
	Largest      Expense
}

// CategoryStats holds aggregated spend for a single category.
type CategoryStats struct {
	Category     Category
	Total        decimal.Decimal
	Count        int
	SharePercent float64
}

// DailyStats holds spend for a single calendar day.
type DailyStats struct {
	Date       time.Time
	Total      decimal.Decimal
	Count      int
	Cumulative decimal.Decimal
}

// PeriodComparison holds current and previous period data for delta computation.
type PeriodComparison struct {
	Current  SummaryStats
	Previous SummaryStats
}
