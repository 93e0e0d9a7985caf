package commands

// Root command for Cobra CLI
// Without a subcommand it runs the interactive report menu
// Loads configuration and initializes logging before any command runs

import (
	"fmt"

	"github.com/spf13/cobra"

	"sales-report/internal/infra/config"
	"sales-report/internal/infra/log"
)

// cfg is filled by PersistentPreRunE before any RunE.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "sales-report",
	Short: "Sales Report - charts and dashboards from a SQLite sales database",
	Long: `Sales Report reads the analysis views of a SQLite sales database and renders
bar and line charts plus a combined dashboard as PNG files, from an interactive menu
or from one-shot subcommands.`,
	Version:           "1.0.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { log.Sync() },
	RunE:              runMenu,
}

func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := log.Init(loaded.App.LogsDir); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg = loaded
	return nil
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(seedCmd)
}
