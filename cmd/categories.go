package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashburn/internal/cli"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Spend breakdown by category",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	r, err := loadReport(cmd.Context())
	if err != nil || r == nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("CATEGORIES  " + windowLabel()))
	fmt.Println()

	rows := make([][]string, 0, len(r.Categories)+2)
	for _, cs := range r.Categories {
		rows = append(rows, []string{
			string(cs.Category),
			cli.FormatNumber(int64(cs.Count)),
			cli.FormatMoney(cs.Total, currency()),
			cli.RenderShareBar(cs.SharePercent, 16),
		})
	}
	rows = append(rows,
		[]string{cli.Separator},
		[]string{
			"Total",
			cli.FormatNumber(int64(r.Summary.ExpenseCount)),
			cli.FormatMoney(r.Summary.TotalSpend, currency()),
			"",
		},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Count", "Total", "Share"},
		Rows:    rows,
	}))
	return nil
}
