// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// api.go - public entry point. Shapes are declared in impl_*.go.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtree/tree"
)

// Shape builds a tree from the resolved builderConfig. Shapes MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Assign values through cfg.valueFn in breadth-first creation order.
//   - Produce identical trees for the same config.
type Shape func(cfg builderConfig) (*tree.Node[string], error)

// Build resolves opts and runs shape. Shape errors are wrapped with
// "Build: %w"; callers should branch with errors.Is.
func Build(shape Shape, opts ...BuilderOption) (*tree.Node[string], error) {
	if shape == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilShape)
	}
	cfg := newBuilderConfig(opts...)

	root, err := shape(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return root, nil
}

// Canonical shape names, used to prefix errors and by the CLI.
const (
	MethodChain    = "Chain"
	MethodStar     = "Star"
	MethodComplete = "Complete"
	MethodRandom   = "Random"
)
