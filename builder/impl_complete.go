// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// impl_complete.go - Complete(arity, depth): every internal node has exactly
// arity children and all leaves sit at the same depth.

package builder

import (
	"github.com/katalvlaran/lvtree/tree"
)

// Complete returns a Shape building a full arity-ary tree of the given depth
// (depth 0 is a lone root). Indices are assigned level by level, left to
// right. Complexity: O(arity^depth) nodes.
func Complete(arity, depth int) Shape {
	return func(cfg builderConfig) (*tree.Node[string], error) {
		if arity < 1 {
			return nil, shapeErrorf(MethodComplete, ErrInvalidArity, "arity=%d", arity)
		}
		if depth < 0 {
			return nil, shapeErrorf(MethodComplete, ErrInvalidDepth, "depth=%d", depth)
		}

		idx := 0
		root := tree.New(cfg.valueFn(idx))
		level := []*tree.Node[string]{root}
		for d := 0; d < depth; d++ {
			next := make([]*tree.Node[string], 0, len(level)*arity)
			for _, parent := range level {
				for k := 0; k < arity; k++ {
					idx++
					child := tree.New(cfg.valueFn(idx))
					parent.Add(child)
					next = append(next, child)
				}
			}
			level = next
		}

		return root, nil
	}
}
