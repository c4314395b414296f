package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cashburn/internal/model"
)

func expense(day int, amount string, c model.Category) model.Expense {
	return model.Expense{
		Date:     time.Date(2025, 3, day, 0, 0, 0, 0, time.Local),
		Amount:   decimal.RequireFromString(amount),
		Category: c,
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	l := New()
	l.Add(expense(5, "10", model.CategoryFood))
	l.Add(expense(1, "20", model.CategoryRent))
	l.Add(expense(3, "30", model.CategoryTravel))

	all := l.All()
	require.Len(t, all, 3)
	assert.Equal(t, 5, all[0].Date.Day())
	assert.Equal(t, 1, all[1].Date.Day())
	assert.Equal(t, 3, all[2].Date.Day())
	assert.Equal(t, 3, l.Len())
}

func TestAllReturnsCopy(t *testing.T) {
	l := NewFrom([]model.Expense{
		expense(1, "10", model.CategoryFood),
		expense(2, "20", model.CategoryFood),
	})

	all := l.All()
	all[0].Amount = decimal.NewFromInt(999)

	again := l.All()
	require.Len(t, again, 2)
	assert.True(t, again[0].Amount.Equal(decimal.NewFromInt(10)))
}

func TestAddTruncatesToCalendarDay(t *testing.T) {
	l := New()
	l.Add(model.Expense{
		Date:     time.Date(2025, 3, 9, 17, 45, 0, 0, time.Local),
		Amount:   decimal.NewFromInt(4),
		Category: model.CategoryFood,
	})

	got := l.All()[0].Date
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 9, got.Day())
}

func TestEmptyLedger(t *testing.T) {
	l := New()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.All())
}
