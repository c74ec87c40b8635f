// Package cli wires the treesearch commands: it loads configuration, builds
// the logger, and drives the bfs, dfs, builder and treeio packages.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

// NewRootCommand returns the treesearch command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "treesearch",
		Short: "Search and generate trees",
		Long: `treesearch loads a tree from a YAML or JSON document and searches it
breadth-first (or depth-first) for a value, printing the match and the order
in which distinct values were visited.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (YAML)")

	root.AddCommand(newSearchCommand(a), newGenerateCommand(a))

	return root
}

// initLogger builds a production logger writing to stderr, at debug level
// under --verbose.
func (a *app) initLogger() error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}
