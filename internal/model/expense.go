// Package model defines domain types for cashburn expenses and metrics.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed expense categories.
type Category string

const (
	CategoryFood      Category = "Food"
	CategoryRent      Category = "Rent"
	CategoryTravel    Category = "Travel"
	CategoryUtilities Category = "Utilities"
	CategoryShopping  Category = "Shopping"
	CategoryOther     Category = "Other"
)

// Categories lists every category in form display order.
var Categories = []Category{
	CategoryFood,
	CategoryRent,
	CategoryTravel,
	CategoryUtilities,
	CategoryShopping,
	CategoryOther,
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	name := strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DateLayout is the calendar date format used in forms and CSV files.
const DateLayout = "2006-01-02"

// Expense is one logged transaction. Records are never mutated once added.
type Expense struct {
	Date     time.Time
	Amount   decimal.Decimal
	Category Category
}

// Day truncates t to local midnight so expenses compare by calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
