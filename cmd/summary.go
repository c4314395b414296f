package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashburn/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending summary with projection",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	r, err := loadReport(cmd.Context())
	if err != nil || r == nil {
		return err
	}
	s := r.Summary
	sym := currency()

	fmt.Println()
	fmt.Println(cli.RenderTitle("EXPENSE SUMMARY  " + windowLabel()))
	fmt.Println()

	rows := [][]string{
		{"Expenses", cli.FormatNumber(int64(s.ExpenseCount))},
		{"Active Days", cli.FormatNumber(int64(s.ActiveDays))},
		{"First", cli.FormatDate(s.FirstDate)},
		{"Last", cli.FormatDate(s.LastDate)},
		{cli.Separator},
	}

	totalStr := cli.FormatMoney(s.TotalSpend, sym)
	if flagDays > 0 && r.Previous.ExpenseCount > 0 {
		totalStr += fmt.Sprintf("  (%s vs prev %dd)",
			cli.FormatDelta(s.TotalSpend, r.Previous.TotalSpend, sym), flagDays)
	}
	rows = append(rows,
		[]string{"Total Spend", totalStr},
		[]string{"Avg/Active Day", cli.FormatMoney(s.PerActiveDay, sym)},
		[]string{"Avg/Expense", cli.FormatMoney(s.PerExpense, sym)},
		[]string{"Largest", fmt.Sprintf("%s (%s, %s)",
			cli.FormatMoney(s.Largest.Amount, sym), s.Largest.Category, cli.FormatDate(s.Largest.Date))},
		[]string{cli.Separator},
	)

	if total, ok := r.ProjectedTotal(); ok {
		rows = append(rows, []string{
			fmt.Sprintf("Projected Spend in %d Days", len(r.Projection)-1),
			cli.FormatAmount(total, sym),
		})
	} else {
		rows = append(rows, []string{"Projection", projectionNote(r.ProjectionErr)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	return nil
}
