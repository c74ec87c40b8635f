package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/bfs"
	"github.com/katalvlaran/lvtree/dfs"
	"github.com/katalvlaran/lvtree/internal/config"
	"github.com/katalvlaran/lvtree/tree"
	"github.com/katalvlaran/lvtree/treeio"
)

var (
	// ErrNoFile is returned when no tree document was configured.
	ErrNoFile = errors.New("no tree file given (use --file or TREESEARCH_FILE)")

	// ErrNoTarget is returned when no target value was configured.
	ErrNoTarget = errors.New("no target given (use --target or TREESEARCH_TARGET)")
)

// outcome is the strategy-independent view of a search result.
type outcome struct {
	found bool
	value any
	depth int
	path  []any
	order []any
}

func newSearchCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a tree document for a value",
		Example: `  treesearch search --file tree.yaml --target 3
  treesearch search -f tree.json -t null --strategy dfs`,
		Args: cobra.NoArgs,
		RunE: a.runSearch,
	}
	cmd.Flags().StringP("file", "f", "", "Tree document (YAML or JSON)")
	cmd.Flags().StringP("target", "t", "", "Value to find, in YAML scalar syntax (null matches absent values)")
	cmd.Flags().String("strategy", config.StrategyBFS, "Traversal strategy: bfs or dfs")
	cmd.Flags().Int("max-depth", 0, "Maximum depth to explore (0 = unlimited)")

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.File == "" {
		return ErrNoFile
	}
	if cfg.Target == "" {
		return ErrNoTarget
	}

	root, err := treeio.DecodeFile[any](cfg.File)
	if err != nil {
		return err
	}
	target, err := treeio.ParseValue[any](cfg.Target)
	if err != nil {
		return err
	}

	a.logger.Info("Searching tree",
		zap.String("file", cfg.File),
		zap.Any("target", target),
		zap.String("strategy", cfg.Strategy),
		zap.Int("nodes", root.Size()))

	out, err := a.search(cmd, cfg, root, target)
	if err != nil {
		return err
	}
	a.logger.Debug("Search finished", zap.Bool("found", out.found), zap.Int("visited", len(out.order)))

	return printOutcome(cmd.OutOrStdout(), out)
}

// search dispatches to the configured strategy.
func (a *app) search(cmd *cobra.Command, cfg *config.Config, root *tree.Node[any], target any) (outcome, error) {
	ctx := cmd.Context()
	switch cfg.Strategy {
	case config.StrategyDFS:
		limit := -1
		if cfg.MaxDepth > 0 {
			limit = cfg.MaxDepth
		}
		res, err := dfs.Find(root, target,
			dfs.WithContext(ctx),
			dfs.WithMaxDepth(limit),
			dfs.WithLogger(a.logger),
		)
		if err != nil {
			return outcome{}, err
		}
		out := outcome{found: res.Found, depth: res.Depth, order: res.Order}
		if res.Found {
			out.value = res.Node.Value
		}
		return out, nil
	default:
		res, err := bfs.Find(root, target,
			bfs.WithContext(ctx),
			bfs.WithMaxDepth(cfg.MaxDepth),
			bfs.WithLogger(a.logger),
		)
		if err != nil {
			return outcome{}, err
		}
		out := outcome{found: res.Found, depth: res.Depth, path: res.Path, order: res.Order}
		if res.Found {
			out.value = res.Node.Value
		}
		return out, nil
	}
}

func printOutcome(w io.Writer, out outcome) error {
	var err error
	if out.found {
		_, err = fmt.Fprintf(w, "found: %v (depth %d)\n", out.value, out.depth)
		if err == nil && out.path != nil {
			_, err = fmt.Fprintf(w, "path: %v\n", out.path)
		}
	} else {
		_, err = fmt.Fprintln(w, "not found")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "visited: %v\n", out.order)

	return err
}
