// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency symbol is configured.
const DefaultCurrency = "₹"

// FormatMoney formats an amount with a currency symbol, thousands separators
// and two decimals. e.g., 1234.5 -> "₹1,234.50", -12 -> "-₹12.00"
func FormatMoney(d decimal.Decimal, symbol string) string {
	if symbol == "" {
		symbol = DefaultCurrency
	}
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		s = s[1:]
		if strings.Trim(s, "0.") != "" {
			sign = "-"
		}
	}
	whole, frac, _ := strings.Cut(s, ".")
	return sign + symbol + groupDigits(whole) + "." + frac
}

// FormatAmount formats a float amount such as a projected total.
func FormatAmount(f float64, symbol string) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "n/a"
	}
	return FormatMoney(decimal.NewFromFloat(f), symbol)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(strconv.FormatInt(n, 10))
}

func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 share as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDelta formats the change between two amounts with an explicit sign.
func FormatDelta(current, previous decimal.Decimal, symbol string) string {
	delta := current.Sub(previous)
	if delta.IsNegative() {
		return FormatMoney(delta, symbol)
	}
	return "+" + FormatMoney(delta, symbol)
}

// FormatDate renders a calendar date the way forms and CSV files expect it.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// Pluralize returns "1 expense" / "3 expenses".
func Pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return FormatNumber(int64(n)) + " " + noun + "s"
}
