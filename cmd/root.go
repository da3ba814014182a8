package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/isrcb/internal/config"
	"github.com/alexiusacademia/isrcb/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "isrcb",
	Short: "IS 456 Reinforced Concrete Beam Design Tool",
	Long: `isrcb - IS 456 Reinforced Concrete Beam Designer

A CLI tool for the limit state design of reinforced concrete beams
to IS 456:2000.

This tool helps structural engineers perform:
  - Flexural design (singly, doubly reinforced and flanged beams)
  - Shear design and stirrup spacing
  - Bar selection, development and lap lengths
  - Serviceability checks (span/depth ratio, crack width)
  - Bar-bending schedules

Settings are read from .env and the environment (ISRCB_LOG_LEVEL,
ISRCB_LOG_FORMAT, ISRCB_REPORT_AUTHOR, ISRCB_WORKERS).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger = cfg.NewLogger(os.Stderr)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   isrcb v%-49s║\n", version.Version)
		fmt.Println("  ║   IS 456 Reinforced Concrete Beam Designer                ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored actions from IS 456 Table 18 combinations")
		fmt.Println("    • Singly, doubly reinforced and flanged beam design")
		fmt.Println("    • Shear design with Table 19/20 lookups")
		fmt.Println("    • Bar selection, anchorage and bar-bending schedules")
		fmt.Println("    • Batch design from YAML/JSON with xlsx and PDF output")
		fmt.Println()
		fmt.Println("  Use 'isrcb --help' to see available commands.")
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
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Settings file (default .env)")
}
