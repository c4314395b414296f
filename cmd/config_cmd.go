package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cashburn/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultDays > 0 {
		fmt.Printf("    Default days: %d\n", cfg.General.DefaultDays)
	} else {
		fmt.Println("    Default days: all")
	}
	if cfg.General.ExportDir != "" {
		fmt.Printf("    Export dir:   %s\n", cfg.General.ExportDir)
	}
	if len(cfg.General.SeedFiles) > 0 {
		fmt.Printf("    Seed files:   %s\n", strings.Join(cfg.General.SeedFiles, ", "))
	}
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.CurrencySymbol)
	fmt.Println()

	fmt.Println("  [Projection]")
	fmt.Printf("    Horizon: %d days\n", cfg.Projection.HorizonDays)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Printf("    File:  %s\n", cfg.LogPath())
	fmt.Println()

	fmt.Println("  Run `cashburn setup` to reconfigure.")
	return nil
}
