// Package cmd implements the cashburn CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/cashburn/internal/cli"
	"github.com/theirongolddev/cashburn/internal/config"
	"github.com/theirongolddev/cashburn/internal/logger"
	"github.com/theirongolddev/cashburn/internal/model"
	"github.com/theirongolddev/cashburn/internal/pipeline"
	"github.com/theirongolddev/cashburn/internal/session"
)

var (
	flagFiles    []string
	flagDays     int
	flagCategory string
	flagQuiet    bool
	flagLogLevel string
	flagLogFile  string
)

// appCfg is loaded once per invocation in the persistent pre-run hook.
var appCfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:               "cashburn",
	Short:             "Personal expense dashboard",
	Long:              "Log expenses, break them down by category, and project the next month of spending.",
	SilenceUsage:      true,
	PersistentPreRunE: setupRun,
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		_ = logger.FromContext(cmd.Context()).Sync()
	},
	RunE: runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&flagFiles, "file", "f", nil, "Seed CSV file or directory (repeatable)")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", 0, "Time window in days (0 = all)")
	rootCmd.PersistentFlags().StringVarP(&flagCategory, "category", "c", "", "Filter to one category")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path")
}

// setupRun loads the config, resolves flag defaults from it and attaches a
// logger to the command context.
func setupRun(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appCfg = cfg

	if !cmd.Flags().Changed("days") {
		flagDays = cfg.General.DefaultDays
	}
	if flagDays < 0 {
		return fmt.Errorf("--days must not be negative, got %d", flagDays)
	}
	if flagCategory != "" {
		if _, err := model.ParseCategory(flagCategory); err != nil {
			return err
		}
	}

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	log, err := logger.New(level, cfg.LogPath())
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))
	return nil
}

// seedPaths returns the seed files from flags, falling back to config.
func seedPaths() []string {
	if len(flagFiles) > 0 {
		return flagFiles
	}
	return appCfg.General.SeedFiles
}

// loadSession is the shared data loading path used by the report commands.
// It reads every seed file into a fresh session.
func loadSession(ctx context.Context) (*session.Session, *pipeline.LoadResult, error) {
	log := logger.FromContext(ctx)
	paths := seedPaths()
	start := time.Now()

	if !flagQuiet && len(paths) > 0 {
		fmt.Fprintf(os.Stderr, "  Reading expenses...\n")
	}

	// Workers report concurrently; the bar is created on the first report
	// once the file count is known.
	var (
		once sync.Once
		bar  *progressbar.ProgressBar
	)
	progressFn := func(_, total int) {
		if flagQuiet {
			return
		}
		once.Do(func() {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("  Parsing"),
				progressbar.OptionSetWidth(20),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		})
		if err := bar.Add(1); err != nil {
			log.Debug("progress bar update failed", zap.Error(err))
		}
	}

	result, err := pipeline.Load(paths, progressFn)
	if err != nil {
		return nil, nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	if !flagQuiet && result.TotalFiles > 0 {
		fmt.Fprintf(os.Stderr, "  Loaded %s from %s\n",
			cli.Pluralize(len(result.Expenses), "expense"),
			cli.Pluralize(result.ParsedFiles, "file"),
		)
	}
	for _, e := range result.Errors {
		fmt.Fprint(os.Stderr, cli.RenderWarning(e.Error()))
	}

	log.Info("loaded seed expenses",
		zap.Int("files", result.TotalFiles),
		zap.Int("file_errors", result.FileErrors),
		zap.Int("expenses", len(result.Expenses)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return session.New(result.Expenses), result, nil
}

// reportOptions builds pipeline options from the resolved flags.
func reportOptions() pipeline.Options {
	category, _ := model.ParseCategory(flagCategory)
	return pipeline.Options{
		Days:     flagDays,
		Category: category,
		Horizon:  appCfg.Projection.HorizonDays,
	}
}

// loadReport loads the seed files and builds one report. A nil report means
// there was nothing to show and a message was already printed.
func loadReport(ctx context.Context) (*pipeline.Report, error) {
	sess, _, err := loadSession(ctx)
	if err != nil {
		return nil, err
	}
	if sess.Len() == 0 {
		fmt.Println("\n  No expenses loaded.")
		fmt.Println("  Pass seed CSV files with --file, or run `cashburn` to add expenses interactively.")
		return nil, nil
	}

	r := sess.Report(reportOptions())
	if r.Empty() {
		fmt.Println("\n  No expenses in the selected range.")
		return nil, nil
	}
	return &r, nil
}

// windowLabel describes the active window and category filter for titles.
func windowLabel() string {
	var parts []string
	if flagDays > 0 {
		parts = append(parts, fmt.Sprintf("Last %dd", flagDays))
	} else {
		parts = append(parts, "All time")
	}
	if flagCategory != "" {
		category, _ := model.ParseCategory(flagCategory)
		parts = append(parts, string(category))
	}
	return strings.Join(parts, "  ")
}

func currency() string {
	return appCfg.Display.CurrencySymbol
}
