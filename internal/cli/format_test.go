package cli

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in     string
		symbol string
		want   string
	}{
		{"0", "", "₹0.00"},
		{"5", "₹", "₹5.00"},
		{"1234.5", "₹", "₹1,234.50"},
		{"999.999", "₹", "₹1,000.00"},
		{"1234567.891", "$", "$1,234,567.89"},
		{"-12", "₹", "-₹12.00"},
		{"-0.001", "₹", "₹0.00"},
		{"-4321.1", "₹", "-₹4,321.10"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in), tt.symbol))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹330.00", FormatAmount(330.0000000001, "₹"))
	assert.Equal(t, "-₹7.25", FormatAmount(-7.25, "₹"))
	assert.Equal(t, "n/a", FormatAmount(math.NaN(), "₹"))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "999", FormatNumber(999))
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "1,234,567", FormatNumber(1234567))
	assert.Equal(t, "-12,345", FormatNumber(-12345))
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+₹50.00", FormatDelta(decimal.NewFromInt(150), decimal.NewFromInt(100), "₹"))
	assert.Equal(t, "-₹25.50", FormatDelta(decimal.NewFromInt(100), decimal.RequireFromString("125.5"), "₹"))
	assert.Equal(t, "+₹0.00", FormatDelta(decimal.Zero, decimal.Zero, "₹"))
}

func TestSmallFormatters(t *testing.T) {
	assert.Equal(t, "42.5%", FormatPercent(42.46))
	assert.Equal(t, "2025-02-03", FormatDate(time.Date(2025, 2, 3, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "-", FormatDate(time.Time{}))
	assert.Equal(t, "Wed", FormatDayOfWeek(3))
	assert.Equal(t, "???", FormatDayOfWeek(9))
	assert.Equal(t, "1 expense", Pluralize(1, "expense"))
	assert.Equal(t, "1,200 expenses", Pluralize(1200, "expense"))
}
