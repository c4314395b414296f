package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashburn/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, an
// optional flash message, and session info on the right.
func RenderStatusBar(width int, flash, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	flashStyle := lipgloss.NewStyle().
		Foreground(t.Green).
		Background(t.Surface).
		Bold(true)

	left := style.Render(" [a]dd  [f]ilter  [E]xport  [?]help  [q]uit")
	if flash != "" {
		left += style.Render("  ") + flashStyle.Render(flash)
	}
	right := ""
	if info != "" {
		right = style.Render(info + " ")
	}

	padding := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + style.Render(strings.Repeat(" ", padding)) + right
}
