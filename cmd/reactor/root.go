package main

import (
	"fmt"
	"os"

	"github.com/biomodel/reactor/internal/config"
	"github.com/biomodel/reactor/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "reactor",
	Short: "Assemble and inspect biochemical reaction model documents",
	Long: `reactor loads a declarative model document (native XML or a
subset of SBML), assembles it into bound propensities/delays/rules and
stoichiometry matrices, and exposes commands to validate, inspect, and
evaluate it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(); err != nil {
			return err
		}
		cfg := config.Load()

		var err error
		logger, err = logging.New(cfg.LogLevel, cfg.Format)
		if err != nil {
			return fmt.Errorf("configuring logger: %w", err)
		}
		return nil
	},
}

func init() {
	config.BindFlags(rootCmd)
}

// Execute runs the root command, flushing the logger on the way out.
func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
