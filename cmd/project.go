package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/cashburn/internal/cli"
	"github.com/theirongolddev/cashburn/internal/logger"
	"github.com/theirongolddev/cashburn/internal/pipeline"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Projected cumulative spend for the coming days",
	RunE:  runProject,
}

var projectEvery int

func init() {
	projectCmd.Flags().IntVar(&projectEvery, "every", 1, "Show every Nth projected day")
	rootCmd.AddCommand(projectCmd)
}

// projectionNote explains why a report carries no projection.
func projectionNote(err error) string {
	if errors.Is(err, pipeline.ErrInsufficientData) {
		return "Add expenses on at least two different days to see a spending projection."
	}
	return "Projection unavailable."
}

func runProject(cmd *cobra.Command, _ []string) error {
	r, err := loadReport(cmd.Context())
	if err != nil || r == nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECTION  " + windowLabel()))
	fmt.Println()

	if r.ProjectionErr != nil {
		if errors.Is(r.ProjectionErr, pipeline.ErrProjectionUnavailable) {
			logger.FromContext(cmd.Context()).Warn("projection unavailable", zap.Error(r.ProjectionErr))
		}
		fmt.Print(cli.RenderNote(projectionNote(r.ProjectionErr)))
		return nil
	}

	step := max(projectEvery, 1)
	last := len(r.Projection) - 1
	rows := make([][]string, 0, len(r.Projection)/step+1)
	for i, p := range r.Projection {
		if i%step != 0 && i != last {
			continue
		}
		rows = append(rows, []string{
			cli.FormatDate(p.Date),
			cli.FormatDayOfWeek(int(p.Date.Weekday())),
			fmt.Sprintf("+%d", p.DayOffset-r.Projection[0].DayOffset),
			cli.FormatAmount(p.Spend, currency()),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Ahead", "Projected"},
		Rows:    rows,
	}))

	total, _ := r.ProjectedTotal()
	fmt.Println()
	fmt.Print(cli.RenderMetric(fmt.Sprintf("Projected Spend in %d Days", last), cli.FormatAmount(total, currency()), 28))
	fmt.Print(cli.RenderMetric("Spent So Far", cli.FormatMoney(r.Summary.TotalSpend, currency()), 28))
	return nil
}
