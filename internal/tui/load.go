package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/cashburn/internal/model"
	"github.com/theirongolddev/cashburn/internal/pipeline"
	"github.com/theirongolddev/cashburn/internal/source"
)

// loadDataCmd reads the seed files in a background goroutine. It streams
// ProgressMsg updates and a final DataLoadedMsg through sub. Records are
// handed to the update loop and never touch the ledger here.
func loadDataCmd(seeds []string, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()

			// Non-blocking send so workers aren't stalled; the next update catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}

			result, err := pipeline.Load(seeds, progressFn)
			if err != nil {
				sub <- DataLoadedMsg{Errors: []error{err}, LoadTime: time.Since(start)}
				return
			}
			sub <- DataLoadedMsg{
				Expenses: result.Expenses,
				Files:    result.TotalFiles,
				Errors:   result.Errors,
				LoadTime: time.Since(start),
			}
		}()

		// Block until the first message (either ProgressMsg or DataLoadedMsg)
		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// exportFileName names an export by its creation time.
func exportFileName(now time.Time) string {
	return fmt.Sprintf("cashburn-%s.csv", now.Format("20060102-150405"))
}

// exportCmd writes a snapshot of the ledger to a timestamped CSV file.
func exportCmd(expenses []model.Expense, dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		if dir == "" {
			dir = "."
		}
		path := filepath.Join(dir, exportFileName(now))
		if err := source.WriteFile(path, expenses); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}
