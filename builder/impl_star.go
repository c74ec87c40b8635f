// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_star.go - Star(n): one hub with n-1 leaves.

package builder

import (
	"github.com/katalvlaran/lvtree/tree"
)

const minStarNodes = 2

// Star returns a Shape building a hub (index 0) with leaves 1..n-1 in
// ascending order. Complexity: O(n).
func Star(n int) Shape {
	return func(cfg builderConfig) (*tree.Node[string], error) {
		if n < minStarNodes {
			return nil, shapeErrorf(MethodStar, ErrTooFewNodes, "n=%d < min=%d", n, minStarNodes)
		}
		hub := tree.New(cfg.valueFn(0))
		hub.Children = make([]*tree.Node[string], 0, n-1)
		for i := 1; i < n; i++ {
			hub.Add(tree.New(cfg.valueFn(i)))
		}

		return hub, nil
	}
}
