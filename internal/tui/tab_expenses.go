package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashburn/internal/cli"
	"github.com/theirongolddev/cashburn/internal/tui/components"
	"github.com/theirongolddev/cashburn/internal/tui/theme"
)

func (a App) renderExpensesTab(cw, h int) string {
	t := theme.Active
	expenses := a.report.Expenses
	sym := a.currency()

	if len(expenses) == 0 {
		return infoMessage("Expenses", emptyLedgerMessage, cw)
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	innerW := components.CardInnerWidth(cw)

	amountW := len("Amount")
	for _, e := range expenses {
		amountW = max(amountW, lipgloss.Width(cli.FormatMoney(e.Amount, sym)))
	}
	const dateW, dayW, catW = 10, 3, 10

	row := func(date, day, cat, amount string) string {
		amountCell := strings.Repeat(" ", max(0, amountW-lipgloss.Width(amount))) + amount
		line := fmt.Sprintf("%-*s  %-*s  %-*s  %s", dateW, date, dayW, day, catW, truncStr(cat, catW), amountCell)
		return line + strings.Repeat(" ", max(0, innerW-lipgloss.Width(line)))
	}

	// card border (2) + title (1) + header (1) + footer (1)
	visible := max(3, h-5)
	offset := a.expOffset
	if a.expCursor < offset {
		offset = a.expCursor
	}
	if a.expCursor >= offset+visible {
		offset = a.expCursor - visible + 1
	}
	end := min(len(expenses), offset+visible)

	var body strings.Builder
	body.WriteString(headerStyle.Render(row("Date", "Day", "Category", "Amount")))
	body.WriteString("\n")
	for i := offset; i < end; i++ {
		e := expenses[i]
		line := row(cli.FormatDate(e.Date), cli.FormatDayOfWeek(int(e.Date.Weekday())), string(e.Category),
			cli.FormatMoney(e.Amount, sym))
		if i == a.expCursor {
			body.WriteString(selectedStyle.Render(line))
		} else {
			body.WriteString(rowStyle.Render(line))
		}
		body.WriteString("\n")
	}
	body.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d · total %s · j/k to scroll",
		a.expCursor+1, len(expenses), cli.FormatMoney(a.report.Summary.TotalSpend, sym))))

	return components.ContentCard("Expenses (most recent first)", body.String(), cw)
}
