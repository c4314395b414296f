package components

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineChartDimensions(t *testing.T) {
	actual := []float64{10, 20, 30, math.NaN(), math.NaN()}
	projected := []float64{math.NaN(), math.NaN(), 30, 40, 50}
	labels := []string{"Jun 1", "", "Jun 3", "", "Jun 5"}

	out := LineChart([]Series{
		{Values: actual, Color: lipgloss.Color("2")},
		{Values: projected, Color: lipgloss.Color("3"), Dashed: true},
	}, labels, 60, 8)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8+2) // rows + axis + labels
	for i := 0; i < 8; i++ {
		assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width(lines[i]), "row %d", i)
	}
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "•")
	assert.Contains(t, lines[len(lines)-1], "Jun 1")
	assert.Contains(t, lines[len(lines)-1], "Jun 5")
}

func TestLineChartNegativeRangeDrawsZeroLine(t *testing.T) {
	out := LineChart([]Series{{Values: []float64{50, 10, -30, -70}, Color: lipgloss.Color("1")}}, nil, 40, 9)
	assert.Contains(t, out, "┄")
	assert.Contains(t, out, "-")
}

func TestLineChartEmpty(t *testing.T) {
	assert.Empty(t, LineChart(nil, nil, 40, 8))
	assert.Empty(t, LineChart([]Series{{Values: []float64{math.NaN()}}}, nil, 40, 8))
}

func TestSampleAt(t *testing.T) {
	vals := []float64{0, 10, math.NaN()}
	assert.InDelta(t, 5.0, sampleAt(vals, 3, 1, 5), 1e-9)
	assert.InDelta(t, 10.0, sampleAt(vals, 3, 2, 5), 1e-9)
	assert.True(t, math.IsNaN(sampleAt(vals, 3, 4, 5)))
}

func TestFormatChartLabel(t *testing.T) {
	assert.Equal(t, "0", formatChartLabel(0))
	assert.Equal(t, "500", formatChartLabel(500))
	assert.Equal(t, "2k", formatChartLabel(2000))
	assert.Equal(t, "1.5L", formatChartLabel(150000))
	assert.Equal(t, "-2k", formatChartLabel(-2000))
}

func TestBarChartFallsBackToSparkline(t *testing.T) {
	out := BarChart([]float64{1, 2, 3}, nil, lipgloss.Color("2"), 10, 2)
	assert.Equal(t, 3, lipgloss.Width(out))
}
