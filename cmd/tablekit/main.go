// Package main provides the tablekit command-line interface: loading,
// cleaning, filtering, summarizing and generating tabular datasets.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tablekit/internal/config"
	"tablekit/internal/infrastructure"
	"tablekit/pkg/contracts"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// newRootCmd creates and returns the root command.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tablekit",
		Short:   "tablekit - tabular dataset toolkit",
		Long:    `tablekit loads tabular data from CSV and Excel files, cleans and filters it, computes per-column statistics and group aggregations, and generates deterministic sample datasets.`,
		Version: contracts.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}

			if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(contracts.GetFullVersionString() + "\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newGenerateCommand(),
		newCleanCommand(),
		newFilterCommand(),
		newStatsCommand(),
		newGroupCommand(),
		newValidateCommand(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
