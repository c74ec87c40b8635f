// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_random.go - Random(n): a random recursive tree.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); cfg.rng != nil (else ErrNeedRandSource).
//   - Node i ≥ 1 is attached under a parent drawn uniformly from [0, i).
//   - Values are then assigned in breadth-first order, so index 0 is the root
//     and values grow level by level like every other shape.

package builder

import (
	"github.com/katalvlaran/lvtree/tree"
)

const minRandomNodes = 1

// Random returns a Shape building a random recursive tree of n nodes.
// Complexity: O(n) time and space.
func Random(n int) Shape {
	return func(cfg builderConfig) (*tree.Node[string], error) {
		if n < minRandomNodes {
			return nil, shapeErrorf(MethodRandom, ErrTooFewNodes, "n=%d < min=%d", n, minRandomNodes)
		}
		if cfg.rng == nil {
			return nil, shapeErrorf(MethodRandom, ErrNeedRandSource, "n=%d", n)
		}

		// draw topology first, with placeholder values
		nodes := make([]*tree.Node[string], n)
		nodes[0] = &tree.Node[string]{}
		for i := 1; i < n; i++ {
			nodes[i] = &tree.Node[string]{}
			parent := nodes[cfg.rng.Intn(i)]
			parent.Add(nodes[i])
		}

		// assign values breadth-first
		idx := 0
		queue := []*tree.Node[string]{nodes[0]}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			cur.Value = cfg.valueFn(idx)
			idx++
			queue = append(queue, cur.Children...)
		}

		return nodes[0], nil
	}
}
