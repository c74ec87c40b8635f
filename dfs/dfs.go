// Package dfs implements depth-first (pre-order) search on a tree.Node.
// It is the depth-first counterpart of package bfs and shares its rules:
// values already visited are skipped together with their subtrees, children
// are explored left to right, and the search stops at the first match.
//
// Key features:
//   - Find(root, target, opts...) / FindFunc(root, match, opts...)
//   - Hooks: OnVisit (pre-order) with error aborts
//   - Limits: MaxDepth
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(N) for N reachable nodes, plus hook overhead.
//   - Memory: O(N) for the explicit stack and visited set.
//
// Errors:
//
//   - ErrNilMatch          if FindFunc receives a nil predicate.
//   - ErrOptionViolation   if the OnVisit hook's value type does not match.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnVisit.
//   - tree.ErrUncomparableValue if the target or a node value (held in an
//     interface) is a slice, map or other type that cannot be hashed.
package dfs

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvtree/tree"
)

// frame is one pending node on the explicit stack.
type frame[T comparable] struct {
	node  *tree.Node[T]
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[T comparable] struct {
	opts    DFSOptions
	match   func(T) bool
	onVisit func(T, int) error
	seen    map[T]struct{}
	res     *DFSResult[T]
}

// Find performs depth-first search from root and returns the first node, in
// pre-order, whose value equals target. Without options it fails only with
// tree.ErrUncomparableValue.
func Find[T comparable](root *tree.Node[T], target T, opts ...Option) (*DFSResult[T], error) {
	if err := tree.CheckComparable(target); err != nil {
		return nil, fmt.Errorf("dfs: target: %w", err)
	}

	return FindFunc(root, func(v T) bool { return tree.Equal(v, target) }, opts...)
}

// FindFunc is Find driven by an arbitrary predicate.
// ErrNilMatch and ErrOptionViolation are detected up front and return a nil
// DFSResult. Context, hook and uncomparable-value errors occur mid-traversal
// and return the partial DFSResult alongside the error.
func FindFunc[T comparable](root *tree.Node[T], match func(T) bool, opts ...Option) (*DFSResult[T], error) {
	// 1. Validate predicate
	if match == nil {
		return nil, ErrNilMatch
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}
	hook, err := resolveHook[T](dopts)
	if err != nil {
		return nil, err
	}

	// 3. Initialize walker
	w := &dfsWalker[T]{
		opts:    dopts,
		match:   match,
		onVisit: hook,
		seen:    make(map[T]struct{}),
		res:     &DFSResult[T]{Depth: -1},
	}
	if root == nil {
		return w.res, nil
	}

	return w.res, w.traverse(root)
}

// traverse pops frames until a match, exhaustion or cancellation.
// Children are pushed in reverse so the leftmost child is explored first.
func (w *dfsWalker[T]) traverse(root *tree.Node[T]) error {
	stack := []frame[T]{{node: root, depth: 0}}
	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 2. Skip values already recorded, subtree included; hashing needs
		// a comparable dynamic type
		v := top.node.Value
		if err := tree.CheckComparable(v); err != nil {
			return fmt.Errorf("dfs: node at depth %d: %w", top.depth, err)
		}
		if _, dup := w.seen[v]; dup {
			continue
		}

		// 3. Record and run pre-order hook
		w.seen[v] = struct{}{}
		w.res.Order = append(w.res.Order, v)
		if ce := w.opts.Logger.Check(zapcore.DebugLevel, "dfs: visit"); ce != nil {
			ce.Write(zap.Any("value", v), zap.Int("depth", top.depth))
		}
		if w.onVisit != nil {
			if err := w.onVisit(v, top.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
			}
		}

		// 4. Match stops the search
		if w.match(v) {
			w.res.Node = top.node
			w.res.Found = true
			w.res.Depth = top.depth
			return nil
		}

		// 5. Depth limit: do not descend past MaxDepth
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		for i := len(top.node.Children) - 1; i >= 0; i-- {
			if c := top.node.Children[i]; c != nil {
				stack = append(stack, frame[T]{node: c, depth: top.depth + 1})
			}
		}
	}

	return nil
}
