package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashburn/internal/tui/theme"
)

var blockRunes = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(blockRunes)-1))
		buf.WriteRune(blockRunes[max(0, min(idx, len(blockRunes)-1))])
	}

	style := lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface)
	return style.Render(buf.String())
}

// BarChart renders a vertical bar chart with a labeled Y axis. Values are
// expected to be non-negative.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: grow the tick step until the intervals fit the height
	tickStep := chartTickStep(maxVal)
	maxIntervals := max(2, height/2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(1, int(math.Round(ceiling/tickStep)))
	rowsPerTick := max(2, height/numIntervals)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(4, len(formatChartLabel(ceiling))+1)
	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	chartW := max(5, width-yLabelW-1)
	n := len(values)

	gap := 1
	barW := chartW
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	}
	if barW < 2 && n > 1 {
		// Too many bars: sample down to what fits
		maxN := max(2, (chartW+1)/3)
		sampled := make([]float64, maxN)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, maxN)
		}
		for i := range sampled {
			src := i * (n - 1) / (maxN - 1)
			sampled[i] = values[src]
			if sampledLabels != nil {
				sampledLabels[i] = labels[src]
			}
		}
		values, labels, n, barW = sampled, sampledLabels, maxN, 2
	}
	barW = min(barW, 6)
	if n <= 1 {
		gap = 0
	}
	axisLen := n*barW + max(0, n-1)*gap

	partial := append([]rune{' '}, blockRunes...)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		barColor := color
		if float64(row)/float64(chartH) > 0.8 {
			barColor = t.AccentBright
		}
		barStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, tickLabels[row])))
		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(blankStyle.Render(strings.Repeat(" ", gap)))
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = max(1, min(idx, 8))
				b.WriteString(barStyle.Render(strings.Repeat(string(partial[idx]), barW)))
			default:
				b.WriteString(blankStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└%s", yLabelW, "0", strings.Repeat("─", axisLen))))

	if len(labels) == n {
		positions := make([]int, n)
		for i := range positions {
			positions[i] = i * (barW + gap)
		}
		b.WriteString("\n")
		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(placeLabels(labels, positions, axisLen)))
	}

	return b.String()
}

// Series is one line plotted by LineChart. NaN values are gaps.
type Series struct {
	Values []float64
	Color  lipgloss.Color
	Dashed bool
}

type chartCell struct {
	r     rune
	color lipgloss.Color
}

// LineChart plots series that share an x axis. Values may be negative; a
// dotted zero line is drawn when the range crosses zero. labels, if given,
// must match the longest series; empty labels are skipped.
func LineChart(series []Series, labels []string, width, height int) string {
	t := theme.Active

	n := 0
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		n = max(n, len(s.Values))
		for _, v := range s.Values {
			if !math.IsNaN(v) {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
		}
	}
	if n == 0 || math.IsInf(lo, 1) {
		return ""
	}
	lo = math.Min(lo, 0)
	if hi <= lo {
		hi = lo + 1
	}

	step := chartTickStep(hi - lo)
	top := math.Ceil(hi/step) * step
	bottom := math.Floor(lo/step) * step

	yLabelW := max(4, len(formatChartLabel(top)), len(formatChartLabel(bottom))) + 1
	chartW := max(5, width-yLabelW-1)
	chartH := max(3, height)

	rowOf := func(v float64) int {
		r := int(math.Round((top - v) / (top - bottom) * float64(chartH-1)))
		return max(0, min(r, chartH-1))
	}

	grid := make([][]chartCell, chartH)
	for r := range grid {
		grid[r] = make([]chartCell, chartW)
	}

	zeroRow := -1
	if bottom < 0 {
		zeroRow = rowOf(0)
		for c := range grid[zeroRow] {
			grid[zeroRow][c] = chartCell{'┄', t.TextDim}
		}
	}

	for _, s := range series {
		prev := -1
		for c := 0; c < chartW; c++ {
			v := sampleAt(s.Values, n, c, chartW)
			if math.IsNaN(v) {
				prev = -1
				continue
			}
			r := rowOf(v)
			if s.Dashed {
				if c%2 == 0 {
					grid[r][c] = chartCell{'•', s.Color}
				}
				continue
			}
			if prev >= 0 {
				for y := min(prev, r) + 1; y < max(prev, r); y++ {
					grid[y][c] = chartCell{'│', s.Color}
				}
			}
			grid[r][c] = chartCell{'●', s.Color}
			prev = r
		}
	}

	yLabels := map[int]string{
		0:          formatChartLabel(top),
		chartH - 1: formatChartLabel(bottom),
	}
	if zeroRow > 0 && zeroRow < chartH-1 {
		yLabels[zeroRow] = "0"
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for r, row := range grid {
		tick := "│"
		if _, ok := yLabels[r]; ok {
			tick = "┤"
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s%s", yLabelW, yLabels[r], tick)))
		for _, cell := range row {
			if cell.r == 0 {
				b.WriteString(blankStyle.Render(" "))
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(cell.color).Background(t.Surface).Render(string(cell.r)))
		}
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW) + "└" + strings.Repeat("─", chartW)))

	if len(labels) == n {
		positions := make([]int, n)
		for i := range positions {
			if n > 1 {
				positions[i] = int(math.Round(float64(i) * float64(chartW-1) / float64(n-1)))
			}
		}
		b.WriteString("\n")
		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(placeLabels(labels, positions, chartW)))
	}

	return b.String()
}

// sampleAt maps chart column c onto the series and interpolates linearly
// between neighboring points. A gap next to a point snaps to the nearer one.
func sampleAt(values []float64, n, c, width int) float64 {
	at := func(i int) float64 {
		if i < 0 || i >= len(values) {
			return math.NaN()
		}
		return values[i]
	}
	if n == 1 || width == 1 {
		return at(0)
	}

	pos := float64(c) * float64(n-1) / float64(width-1)
	i := int(math.Floor(pos))
	frac := pos - float64(i)
	a, b := at(i), at(min(i+1, n-1))

	switch {
	case math.IsNaN(a) && math.IsNaN(b):
		return math.NaN()
	case math.IsNaN(a):
		if frac >= 0.5 {
			return b
		}
		return math.NaN()
	case math.IsNaN(b):
		if frac < 0.5 {
			return a
		}
		return math.NaN()
	}
	return a + (b-a)*frac
}

// placeLabels writes labels at their column positions, skipping any that
// would overlap a previous label. The last label is right-aligned if it
// would run past the axis.
func placeLabels(labels []string, positions []int, axisLen int) string {
	buf := []rune(strings.Repeat(" ", axisLen))
	lastEnd := -1
	for i, lbl := range labels {
		if lbl == "" {
			continue
		}
		runes := []rune(lbl)
		pos := positions[i]
		if pos+len(runes) > axisLen {
			pos = axisLen - len(runes)
		}
		if pos <= lastEnd || pos < 0 {
			continue
		}
		copy(buf[pos:], runes)
		lastEnd = pos + len(runes)
	}
	return strings.TrimRight(string(buf), " ")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	rough := span / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	if v < 0 {
		return "-" + formatChartLabel(-v)
	}
	compact := func(div float64, suffix string) string {
		if v == math.Trunc(v/div)*div {
			return fmt.Sprintf("%.0f%s", v/div, suffix)
		}
		return fmt.Sprintf("%.1f%s", v/div, suffix)
	}
	switch {
	case v >= 1e7:
		return compact(1e7, "Cr")
	case v >= 1e5:
		return compact(1e5, "L")
	case v >= 1e3:
		return compact(1e3, "k")
	case v >= 1 || v == 0:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
