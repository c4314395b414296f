package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/cashburn/internal/cli"
	"github.com/theirongolddev/cashburn/internal/tui/components"
	"github.com/theirongolddev/cashburn/internal/tui/theme"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active
	cats := a.report.Categories
	sym := a.currency()

	if len(cats) == 0 {
		return infoMessage("Categories", emptyLedgerMessage, cw)
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Spending Share by Category", a.renderShareBars(components.CardInnerWidth(cw), 0), cw))
	b.WriteString("\n")

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true)

	line := func(cat, count, total, share, avg string) string {
		return fmt.Sprintf("%-12s %8s %16s %8s %16s", cat, count, total, share, avg)
	}

	var body strings.Builder
	body.WriteString(headerStyle.Render(line("Category", "Count", "Total", "Share", "Avg / Expense")))
	body.WriteString("\n")
	for _, cs := range cats {
		avg := cs.Total.Div(decimal.NewFromInt(int64(cs.Count))).Round(2)
		body.WriteString(rowStyle.Render(line(
			string(cs.Category),
			cli.FormatNumber(int64(cs.Count)),
			cli.FormatMoney(cs.Total, sym),
			cli.FormatPercent(cs.SharePercent),
			cli.FormatMoney(avg, sym),
		)))
		body.WriteString("\n")
	}
	stats := a.report.Summary
	body.WriteString(totalStyle.Render(line("Total", cli.FormatNumber(int64(stats.ExpenseCount)),
		cli.FormatMoney(stats.TotalSpend, sym), "100.0%", cli.FormatMoney(stats.PerExpense.Round(2), sym))))

	b.WriteString(components.ContentCard("Breakdown", body.String(), cw))
	return b.String()
}
