package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// loggerFactory builds the process logger once flags are parsed.
type loggerFactory func(verbose bool) (*zap.Logger, error)

// newLogger is the production factory: JSON to stderr, debug level on --verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

// app carries state shared by all subcommands.
type app struct {
	verbose    bool
	logger     *zap.Logger
	makeLogger loggerFactory
}

func newRootCmd(makeLogger loggerFactory) *cobra.Command {
	a := &app{makeLogger: makeLogger, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "spantree",
		Short: "Random spanning trees and their diameters",
		Long: `spantree generates random spanning trees of the complete graph K_n,
either by a random walk or as the minimum spanning tree of uniformly random
edge weights (Kruskal), and measures how the tree diameter grows with n.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.makeLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose (debug) logging")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(newTreeCmd(a))

	return root
}
