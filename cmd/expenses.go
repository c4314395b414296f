package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashburn/internal/cli"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Expense list, most recent first",
	RunE:  runExpenses,
}

var expensesLimit int

func init() {
	expensesCmd.Flags().IntVarP(&expensesLimit, "limit", "l", 20, "Number of expenses to show (0 = all)")
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(cmd *cobra.Command, _ []string) error {
	r, err := loadReport(cmd.Context())
	if err != nil || r == nil {
		return err
	}

	expenses := r.Expenses
	if expensesLimit > 0 && len(expenses) > expensesLimit {
		expenses = expenses[:expensesLimit]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  %s (showing %d of %d)",
		windowLabel(), len(expenses), len(r.Expenses))))
	fmt.Println()

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			cli.FormatDayOfWeek(int(e.Date.Weekday())),
			string(e.Category),
			cli.FormatMoney(e.Amount, currency()),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Category", "Amount"},
		Rows:    rows,
	}))
	return nil
}
