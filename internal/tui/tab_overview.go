package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashburn/internal/cli"
	"github.com/theirongolddev/cashburn/internal/model"
	"github.com/theirongolddev/cashburn/internal/tui/components"
	"github.com/theirongolddev/cashburn/internal/tui/theme"
)

const (
	emptyLedgerMessage = "Add an expense using the form to see your summary."
	noMatchMessage     = "No expenses match the current filter."
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	r := a.report
	stats := r.Summary
	sym := a.currency()

	if r.Empty() {
		msg, hint := emptyLedgerMessage, "Press a to add an expense."
		if a.sess.Len() > 0 {
			msg, hint = noMatchMessage, "Press f to change the category filter."
		}
		hintLine := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(hint)
		return infoMessage("Summary", lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render(msg)+"\n"+hintLine, cw)
	}

	var b strings.Builder

	// Row 1: metric cards
	totalDelta := cli.Pluralize(stats.ActiveDays, "active day")
	if a.days > 0 && r.Previous.ExpenseCount > 0 {
		totalDelta = fmt.Sprintf("%s vs prev %dd", cli.FormatDelta(stats.TotalSpend, r.Previous.TotalSpend, sym), a.days)
	}

	projValue, projDelta := "n/a", "needs 2+ days"
	if total, ok := r.ProjectedTotal(); ok {
		projValue = cli.FormatAmount(total, sym)
		projDelta = "cumulative, linear trend"
	} else if r.ProjectionErr != nil && !isInsufficient(r.ProjectionErr) {
		projDelta = "unavailable"
	}

	metrics := []components.Metric{
		{Label: "Total Spend", Value: cli.FormatMoney(stats.TotalSpend, sym), Delta: totalDelta, Color: t.Green},
		{Label: "Expenses", Value: cli.FormatNumber(int64(stats.ExpenseCount)),
			Delta: fmt.Sprintf("%s – %s", cli.FormatDate(stats.FirstDate), cli.FormatDate(stats.LastDate))},
		{Label: "Avg / Active Day", Value: cli.FormatMoney(stats.PerActiveDay.Round(2), sym),
			Delta: cli.FormatMoney(stats.PerExpense.Round(2), sym) + " per expense"},
		{Label: fmt.Sprintf("Projected Spend in %d Days", a.horizon()), Value: projValue, Delta: projDelta, Color: t.Orange},
	}
	if a.isCompactLayout() {
		b.WriteString(components.MetricCardRow(metrics[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(metrics[2:], cw))
	} else {
		b.WriteString(components.MetricCardRow(metrics, cw))
	}
	b.WriteString("\n")

	// Row 2: daily spend chart
	dates, values := continuousDays(r.Days)
	if len(values) > 0 {
		b.WriteString(components.ContentCard(
			"Daily Spend",
			components.BarChart(values, chartDateLabels(dates), t.Blue, components.CardInnerWidth(cw), 8),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: top categories + largest expense
	halves := components.LayoutRow(cw, 2)
	catCard := components.ContentCard("Top Categories", a.renderShareBars(components.CardInnerWidth(halves[0]), 5), halves[0])

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	lg := stats.Largest
	var recent strings.Builder
	fmt.Fprintf(&recent, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", "Largest")),
		valueStyle.Render(fmt.Sprintf("%s  %s  %s", cli.FormatMoney(lg.Amount, sym), lg.Category, cli.FormatDate(lg.Date))))
	fmt.Fprintf(&recent, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", "Span")),
		valueStyle.Render(cli.Pluralize(stats.SpanDays, "day")))
	for i, e := range r.Expenses[:min(3, len(r.Expenses))] {
		label := ""
		if i == 0 {
			label = "Latest"
		}
		fmt.Fprintf(&recent, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label)),
			valueStyle.Render(fmt.Sprintf("%s  %s  %s", cli.FormatDate(e.Date), e.Category, cli.FormatMoney(e.Amount, sym))))
	}
	recentCard := components.ContentCard("Highlights", strings.TrimRight(recent.String(), "\n"), halves[1])

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Top Categories", a.renderShareBars(components.CardInnerWidth(cw), 5), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Highlights", strings.TrimRight(recent.String(), "\n"), cw))
	} else {
		b.WriteString(components.CardRow([]string{catCard, recentCard}))
	}

	return b.String()
}

// renderShareBars renders up to limit category share bars (limit <= 0 = all).
func (a App) renderShareBars(innerW, limit int) string {
	cats := a.report.Categories
	if limit > 0 && len(cats) > limit {
		cats = cats[:limit]
	}

	labelW := 0
	amounts := make([]string, len(cats))
	amountW := 0
	for i, cs := range cats {
		labelW = max(labelW, lipgloss.Width(string(cs.Category)))
		amounts[i] = cli.FormatMoney(cs.Total, a.currency())
		amountW = max(amountW, lipgloss.Width(amounts[i]))
	}
	// label + space + bar + space + "100.0%" + 2 spaces + amount
	barW := max(6, innerW-labelW-1-1-6-2-amountW)

	lines := make([]string, len(cats))
	for i, cs := range cats {
		lines[i] = components.ShareBar(string(cs.Category), cs.SharePercent, amounts[i],
			theme.Active.CategoryColor(cs.Category), labelW, barW)
	}
	return strings.Join(lines, "\n")
}

// continuousDays expands newest-first daily stats into an oldest-first series
// covering every calendar day from first to last, zero-filled.
func continuousDays(days []model.DailyStats) ([]time.Time, []float64) {
	if len(days) == 0 {
		return nil, nil
	}
	first := days[len(days)-1].Date
	last := days[0].Date
	n := model.DaysBetween(first, last) + 1

	dates := make([]time.Time, n)
	values := make([]float64, n)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i)
	}
	for _, d := range days {
		values[model.DaysBetween(first, d.Date)] = d.Total.InexactFloat64()
	}
	return dates, values
}
