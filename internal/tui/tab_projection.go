package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashburn/internal/cli"
	"github.com/theirongolddev/cashburn/internal/model"
	"github.com/theirongolddev/cashburn/internal/pipeline"
	"github.com/theirongolddev/cashburn/internal/tui/components"
	"github.com/theirongolddev/cashburn/internal/tui/theme"
)

const insufficientDataMessage = "Add expenses on at least two different days to see a spending projection."

func isInsufficient(err error) bool {
	return errors.Is(err, pipeline.ErrInsufficientData)
}

func (a App) renderProjectionTab(cw, h int) string {
	t := theme.Active
	r := a.report
	sym := a.currency()
	title := "Spending Projection"

	switch {
	case isInsufficient(r.ProjectionErr):
		return infoMessage(title, insufficientDataMessage, cw)
	case r.ProjectionErr != nil:
		return infoMessage("Projection unavailable",
			"The trend could not be fitted to the current expenses ("+r.ProjectionErr.Error()+").", cw)
	case len(r.Projection) == 0:
		return infoMessage(title, insufficientDataMessage, cw)
	}

	var b strings.Builder

	first, last := r.Projection[0], r.Projection[len(r.Projection)-1]
	spent := r.Actual[len(r.Actual)-1].Cumulative
	perDay := 0.0
	if last.DayOffset > first.DayOffset {
		perDay = (last.Spend - first.Spend) / float64(last.DayOffset-first.DayOffset)
	}

	metrics := []components.Metric{
		{Label: fmt.Sprintf("Projected Spend in %d Days", a.horizon()), Value: cli.FormatAmount(last.Spend, sym),
			Delta: "by " + cli.FormatDate(last.Date), Color: t.Orange},
		{Label: "Spent So Far", Value: cli.FormatMoney(spent, sym),
			Delta: "through " + cli.FormatDate(r.Actual[len(r.Actual)-1].Date), Color: t.Green},
		{Label: "Trend", Value: cli.FormatAmount(perDay, sym) + "/day",
			Delta: fmt.Sprintf("fitted on %s", cli.Pluralize(len(r.Actual), "expense"))},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	dates, actual, projected := projectionSeries(r.Actual, r.Projection)
	labels := make([]string, len(dates))
	labels[0] = dates[0].Format("Jan 2")
	labels[first.DayOffset] = first.Date.Format("Jan 2")
	labels[len(labels)-1] = last.Date.Format("Jan 2")

	// metric cards (5) + card chrome (3) + axis and labels (2) + legend (1)
	chartH := max(6, min(20, h-11))
	chart := components.LineChart([]components.Series{
		{Values: actual, Color: t.Green},
		{Values: projected, Color: t.Orange, Dashed: true},
	}, labels, components.CardInnerWidth(cw), chartH)

	legendBg := lipgloss.NewStyle().Background(t.Surface)
	legend := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Render("● actual") +
		legendBg.Render("   ") +
		lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Render("• projected")

	b.WriteString(components.ContentCard("Cumulative Spend", chart+"\n"+legend, cw))
	return b.String()
}

// projectionSeries lays the actual and projected cumulative spend out on a
// shared day-offset axis. Days without an expense carry the previous
// cumulative total forward; cells outside a series are NaN.
func projectionSeries(obs []model.Observation, points []model.ProjectionPoint) ([]time.Time, []float64, []float64) {
	n := points[len(points)-1].DayOffset + 1
	origin := obs[0].Date.AddDate(0, 0, -obs[0].DayOffset)

	dates := make([]time.Time, n)
	actual := make([]float64, n)
	projected := make([]float64, n)
	for i := range dates {
		dates[i] = origin.AddDate(0, 0, i)
		actual[i] = math.NaN()
		projected[i] = math.NaN()
	}

	lastActual := 0
	for _, o := range obs {
		actual[o.DayOffset] = o.Cumulative.InexactFloat64()
		lastActual = max(lastActual, o.DayOffset)
	}
	for i := 1; i <= lastActual; i++ {
		if math.IsNaN(actual[i]) {
			actual[i] = actual[i-1]
		}
	}
	for _, p := range points {
		projected[p.DayOffset] = p.Spend
	}
	return dates, actual, projected
}
