package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/rcalc/internal/config"
	"github.com/alexiusacademia/rcalc/internal/version"
)

var (
	configFile string
	logLevel   string

	// cfg is loaded before any subcommand runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "rcalc",
	Short: "Reinforced Concrete Reinforcement Calculator (Eurocode 2)",
	Long: `rcalc - Reinforced Concrete Reinforcement Calculator

A CLI tool for sizing the reinforcement of reinforced concrete elements
according to PN-EN 1992-1-1 (Eurocode 2, Polish National Annex).

This tool calculates:
  - Beams: support and span sections, apparent and real T-sections
  - Columns: symmetric and asymmetric reinforcement of two faces
  - Slabs: main and secondary bar spacing per metre strip
  - Footings: bottom mesh, anchorage of column bars and punching shear

Results list the required area, the provided bars or spacing and the
remarks explaining every failed check.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading %s: %w", configFile, err)
		}
		cfg = loaded
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		config.SetupLogging(cfg.Log)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   rcalc v%-49s║\n", version.Version)
		fmt.Println("  ║   Reinforced Concrete Reinforcement Calculator            ║")
		fmt.Println("  ║   PN-EN 1992-1-1 (Eurocode 2)                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Beam, column, slab and footing reinforcement design")
		fmt.Println("    • Bar count and bar spacing selection")
		fmt.Println("    • Nominal cover from the exposure class")
		fmt.Println("    • JSON, YAML and workbook input; PDF and workbook reports")
		fmt.Println("    • HTTP and websocket calculation service")
		fmt.Println()
		fmt.Println("  Use 'rcalc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultFile, "Settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
