// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_chain.go - Chain(n): a single path root → ... → leaf.

package builder

import (
	"github.com/katalvlaran/lvtree/tree"
)

const minChainNodes = 1

// Chain returns a Shape building n nodes where node i has node i+1 as its
// only child. Complexity: O(n).
func Chain(n int) Shape {
	return func(cfg builderConfig) (*tree.Node[string], error) {
		if n < minChainNodes {
			return nil, shapeErrorf(MethodChain, ErrTooFewNodes, "n=%d < min=%d", n, minChainNodes)
		}
		root := tree.New(cfg.valueFn(0))
		cur := root
		for i := 1; i < n; i++ {
			next := tree.New(cfg.valueFn(i))
			cur.Add(next)
			cur = next
		}

		return root, nil
	}
}
