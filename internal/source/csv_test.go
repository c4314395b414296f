package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/cashburn/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

func TestRoundTrip(t *testing.T) {
	in := []model.Expense{
		{Date: date(2025, 1, 3), Amount: decimal.RequireFromString("4.5"), Category: model.CategoryFood},
		{Date: date(2025, 1, 1), Amount: decimal.RequireFromString("1200"), Category: model.CategoryRent},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteExpenses(&buf, in))
	assert.True(t, strings.HasPrefix(buf.String(), Header+"\n"))
	assert.Contains(t, buf.String(), "2025-01-03,4.50,Food")

	out, err := ReadExpenses(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range in {
		assert.True(t, in[i].Date.Equal(out[i].Date))
		assert.True(t, in[i].Amount.Equal(out[i].Amount))
		assert.Equal(t, in[i].Category, out[i].Category)
	}
}

func TestReadExpensesBadRowHasRowNumber(t *testing.T) {
	data := Header + "\n2025-01-01,10,Food\n2025-01-02,-4,Food\n"

	_, err := ReadExpenses(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
	assert.Contains(t, err.Error(), "amount")
}

func TestReadExpensesMissingHeader(t *testing.T) {
	_, err := ReadExpenses(strings.NewReader("2025-01-01,10,Food\n"))
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestReadExpensesEmpty(t *testing.T) {
	out, err := ReadExpenses(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "export.csv")
	in := []model.Expense{
		{Date: date(2025, 2, 14), Amount: decimal.RequireFromString("75.25"), Category: model.CategoryShopping},
	}

	require.NoError(t, WriteFile(path, in))
	out, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "75.25", out[0].Amount.StringFixed(2))
}

func TestScanPaths(t *testing.T) {
	dir := t.TempDir()
	write := func(rel string) string {
		p := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(Header+"\n"), 0o600))
		return p
	}
	a := write("a.csv")
	write("sub/b.CSV")
	write("notes.txt")
	single := write("other/seed.data")

	files, err := ScanPaths([]string{dir, a, single})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"a", "b", "seed"}, names)
}

func TestScanPathsMissing(t *testing.T) {
	_, err := ScanPaths([]string{filepath.Join(t.TempDir(), "nope.csv")})
	assert.Error(t, err)
}
