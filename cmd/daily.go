package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashburn/internal/cli"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily spend breakdown",
	RunE:  runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, _ []string) error {
	r, err := loadReport(cmd.Context())
	if err != nil || r == nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DAILY SPEND  " + windowLabel()))
	fmt.Println()

	rows := make([][]string, 0, len(r.Days))
	for _, d := range r.Days {
		rows = append(rows, []string{
			cli.FormatDate(d.Date),
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			cli.FormatNumber(int64(d.Count)),
			cli.FormatMoney(d.Total, currency()),
			cli.FormatMoney(d.Cumulative, currency()),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Expenses", "Spend", "Cumulative"},
		Rows:    rows,
	}))

	// Days are newest first; the sparkline reads left to right in time.
	values := make([]float64, len(r.Days))
	for i, d := range r.Days {
		values[len(values)-1-i] = d.Total.InexactFloat64()
	}
	fmt.Printf("\n  Trend %s\n", cli.RenderSparkline(values))
	return nil
}
