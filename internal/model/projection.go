package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Observation is one (day offset, cumulative spend) pair fed to the estimator.
type Observation struct {
	DayOffset  int
	Date       time.Time
	Cumulative decimal.Decimal
}

// ProjectionPoint is one predicted cumulative spend value.
// Spend is not clamped and may be negative.
type ProjectionPoint struct {
	DayOffset int
	Date      time.Time
	Spend     float64
}
