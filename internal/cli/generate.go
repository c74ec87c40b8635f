package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/builder"
	"github.com/katalvlaran/lvtree/treeio"
)

type generateFlags struct {
	shape  string
	size   int
	arity  int
	depth  int
	seed   int64
	scheme string
	modulo int
}

func newGenerateCommand(a *app) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated tree document to stdout",
		Example: `  treesearch generate --shape complete --arity 3 --depth 2
  treesearch generate --shape random --size 50 --seed 7 --modulo 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.shape, "shape", "complete", "Tree shape: chain, star, complete or random")
	cmd.Flags().IntVar(&f.size, "size", 10, "Node count for chain, star and random")
	cmd.Flags().IntVar(&f.arity, "arity", 2, "Children per node for complete")
	cmd.Flags().IntVar(&f.depth, "depth", 3, "Depth for complete")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "RNG seed for random")
	cmd.Flags().StringVar(&f.scheme, "scheme", "decimal", "Value scheme: decimal, symbol, excel or hex")
	cmd.Flags().IntVar(&f.modulo, "modulo", 0, "Repeat decimal values every N nodes, not combinable with --scheme (0 = off)")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, f generateFlags) error {
	var shape builder.Shape
	switch f.shape {
	case "chain":
		shape = builder.Chain(f.size)
	case "star":
		shape = builder.Star(f.size)
	case "complete":
		shape = builder.Complete(f.arity, f.depth)
	case "random":
		shape = builder.Random(f.size)
	default:
		return fmt.Errorf("unknown shape %q", f.shape)
	}

	valueFn, ok := builder.ValueScheme(f.scheme)
	if !ok {
		return fmt.Errorf("unknown value scheme %q", f.scheme)
	}
	if f.modulo < 0 {
		return fmt.Errorf("modulo cannot be negative (%d)", f.modulo)
	}
	if f.modulo > 0 && cmd.Flags().Changed("scheme") {
		return fmt.Errorf("--modulo cannot be combined with --scheme %q", f.scheme)
	}
	if f.modulo > 0 {
		valueFn = builder.ModuloValue(f.modulo)
	} else if f.scheme == "symbol" && nodeCount(f) > maxSymbolNodes {
		return fmt.Errorf("symbol scheme supports at most %d nodes", maxSymbolNodes)
	}

	root, err := builder.Build(shape, builder.WithValueScheme(valueFn), builder.WithSeed(f.seed))
	if err != nil {
		return err
	}
	a.logger.Debug("Generated tree",
		zap.String("shape", f.shape),
		zap.Int("nodes", root.Size()),
		zap.Int("height", root.Height()))

	return treeio.Encode(cmd.OutOrStdout(), root)
}

// maxSymbolNodes is the number of single-letter values (A..Z).
const maxSymbolNodes = 26

// nodeCount predicts how many nodes the requested shape builds, saturating
// just above maxSymbolNodes since that is the only bound it is checked against.
func nodeCount(f generateFlags) int {
	if f.shape != "complete" {
		return f.size
	}
	total, level := 0, 1
	for d := 0; d <= f.depth && total <= maxSymbolNodes; d++ {
		total += level
		level *= f.arity
	}

	return total
}
