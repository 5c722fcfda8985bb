// Package cli wires the pipeline into a cobra command tree. All printing
// happens here; the core packages only return structures and errors.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ratersync/internal/config"
	"ratersync/internal/infrastructure"
)

var (
	cfgFile string
	verbose bool

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ratersync",
	Short: "Sync builder energy-performance data with the rating platform",
	Long: `ratersync loads builder spreadsheets and REM interchange files, checks
the projects against the configured ENERGY STAR standard, and produces
submission documents and interchange exports for the rating platform.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}
		logger, err = infrastructure.InitializeLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("initialize logging: %w", err)
		}

		runID := infrastructure.NewRunID()
		cmd.SetContext(infrastructure.WithRunID(cmd.Context(), runID))
		logger.InfoContext(cmd.Context(), "Run started",
			slog.String("command", cmd.Name()))
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the command tree. Called once from main.
func Execute() {
	defer infrastructure.CloseLogFile()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml",
		"path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}
