package tui

import (
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cashburn/internal/model"
	"github.com/theirongolddev/cashburn/internal/tui/components"
	"github.com/theirongolddev/cashburn/internal/tui/theme"
	"github.com/theirongolddev/cashburn/internal/validation"
)

// expenseValues backs the add-expense form. It lives on the heap so the
// form's field pointers survive App being copied between updates.
type expenseValues struct {
	date     string
	amount   string
	category model.Category
}

func newExpenseValues(today time.Time) *expenseValues {
	return &expenseValues{
		date:     today.Format(model.DateLayout),
		category: model.Categories[0],
	}
}

func (v *expenseValues) expense() (model.Expense, error) {
	return validation.Default().ToExpense(validation.ExpenseInput{
		Date:     v.date,
		Amount:   v.amount,
		Category: string(v.category),
	})
}

func fieldValidator(field string) func(string) error {
	return func(s string) error {
		return validation.Default().ValidateField(field, s)
	}
}

func newExpenseForm(vals *expenseValues, currency string) *huh.Form {
	if currency == "" {
		currency = "₹"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&vals.date).
				Validate(fieldValidator("date")),
			huh.NewInput().
				Title("Amount").
				Description("At least 0.01, two decimals").
				Prompt(currency+" ").
				Placeholder("0.00").
				Value(&vals.amount).
				Validate(fieldValidator("amount")),
			huh.NewSelect[model.Category]().
				Title("Category").
				Options(huh.NewOptions(model.Categories...)...).
				Value(&vals.category),
		).Title("Add Expense"),
	).WithTheme(theme.Active.Form()).WithShowHelp(true)
}

func formWidth(termWidth int) int {
	return max(40, min(60, termWidth-8))
}

func (a App) renderAddForm(cw int) string {
	t := theme.Active
	hint := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
		Render("enter to submit · esc to cancel")
	body := a.addForm.View() + "\n" + hint
	return components.ContentCard("New Expense", body, min(cw, formWidth(a.width)+4))
}
