// SPDX-License-Identifier: MIT
// Package: lvtree/bfs

package bfs

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvtree/tree"
)

// queueItem pairs a node with its depth and the index (in links) of the
// visited node that enqueued it.
type queueItem[T comparable] struct {
	node   *tree.Node[T]
	depth  int
	parent int // -1 for root
}

// link records a visited node and the index of its visited parent.
// links[i] always corresponds to res.Order[i].
type link[T comparable] struct {
	node   *tree.Node[T]
	parent int
}

// walker encapsulates mutable BFS state for a single call.
type walker[T comparable] struct {
	opts    Options
	match   func(T) bool
	onVisit func(T, int) error
	onSkip  func(T, int)
	queue   []queueItem[T]
	seen    map[T]struct{}
	links   []link[T]
	res     *Result[T]
}

// Find runs breadth-first search from root and returns the first node whose
// value equals target. "Not found" is reported through Result.Found. Without
// options the only possible error is tree.ErrUncomparableValue, for a target
// or node value (held in an interface) that cannot be compared.
func Find[T comparable](root *tree.Node[T], target T, opts ...Option) (*Result[T], error) {
	if err := tree.CheckComparable(target); err != nil {
		return nil, fmt.Errorf("bfs: target: %w", err)
	}

	return FindFunc(root, func(v T) bool { return tree.Equal(v, target) }, opts...)
}

// FindFunc is Find with an arbitrary predicate in place of value equality.
//
// Errors detected before traversal return a nil Result: ErrNilMatch for a nil
// predicate, ErrOptionViolation for bad options or mistyped hooks. Errors hit
// during traversal return the partial Result visited so far: the context
// error on cancellation, a wrapped OnVisit hook error, or a wrapped
// tree.ErrUncomparableValue for a node value that cannot be hashed.
func FindFunc[T comparable](root *tree.Node[T], match func(T) bool, opts ...Option) (*Result[T], error) {
	if match == nil {
		return nil, ErrNilMatch
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[T]{opts: o, match: match}
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(T, int) error)
		if !ok {
			return nil, fmt.Errorf("%w: OnVisit hook has type %T", ErrOptionViolation, o.onVisit)
		}
		w.onVisit = fn
	}
	if o.onSkip != nil {
		fn, ok := o.onSkip.(func(T, int))
		if !ok {
			return nil, fmt.Errorf("%w: OnSkip hook has type %T", ErrOptionViolation, o.onSkip)
		}
		w.onSkip = fn
	}
	w.reset(nil, nil)

	return w.res, w.run(root)
}

// reset prepares the walker for a new call, reusing the supplied buffers.
func (w *walker[T]) reset(order []T, seen map[T]struct{}) {
	if seen == nil {
		seen = make(map[T]struct{})
	} else {
		clear(seen)
	}
	w.seen = seen
	w.queue = w.queue[:0]
	w.links = w.links[:0]
	w.res = &Result[T]{Order: order[:0], Depth: -1}
}

// run executes steps: record root, test it, seed the queue with its children,
// then process the queue until a match, exhaustion, or cancellation.
func (w *walker[T]) run(root *tree.Node[T]) error {
	if root == nil {
		return nil
	}
	if err := tree.CheckComparable(root.Value); err != nil {
		return fmt.Errorf("bfs: root: %w", err)
	}
	if err := w.visit(queueItem[T]{node: root, depth: 0, parent: -1}); err != nil {
		return err
	}
	if w.match(root.Value) {
		w.found(root, 0)
		return nil
	}
	w.enqueueChildren(root, 0, 0)

	for len(w.queue) > 0 {
		// cancellation check (once per dequeued node)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		// the seen set hashes values, which panics for slices and maps
		if err := tree.CheckComparable(item.node.Value); err != nil {
			return fmt.Errorf("bfs: node at depth %d: %w", item.depth, err)
		}

		// already-seen value: do not record, do not expand
		if _, dup := w.seen[item.node.Value]; dup {
			w.skip(item)
			continue
		}
		if err := w.visit(item); err != nil {
			return err
		}
		if w.match(item.node.Value) {
			w.found(item.node, item.depth)
			return nil
		}
		w.enqueueChildren(item.node, item.depth, len(w.links)-1)
	}

	return nil
}

// visit records the node's value as seen and calls OnVisit.
func (w *walker[T]) visit(item queueItem[T]) error {
	v := item.node.Value
	w.seen[v] = struct{}{}
	w.res.Order = append(w.res.Order, v)
	w.links = append(w.links, link[T]{node: item.node, parent: item.parent})

	if ce := w.opts.Logger.Check(zapcore.DebugLevel, "bfs: visit"); ce != nil {
		ce.Write(zap.Any("value", v), zap.Int("depth", item.depth))
	}
	if w.onVisit != nil {
		if err := w.onVisit(v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", v, err)
		}
	}

	return nil
}

func (w *walker[T]) skip(item queueItem[T]) {
	if ce := w.opts.Logger.Check(zapcore.DebugLevel, "bfs: skip seen value"); ce != nil {
		ce.Write(zap.Any("value", item.node.Value), zap.Int("depth", item.depth))
	}
	if w.onSkip != nil {
		w.onSkip(item.node.Value, item.depth)
	}
}

// enqueueChildren appends every child of n in order. Duplicates are filtered
// when dequeued, not here. MaxDepth is the only reason to hold children back.
func (w *walker[T]) enqueueChildren(n *tree.Node[T], depth, parent int) {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		w.queue = append(w.queue, queueItem[T]{node: c, depth: next, parent: parent})
	}
}

// found fills the match fields and rebuilds the root → match path from links.
func (w *walker[T]) found(n *tree.Node[T], depth int) {
	w.res.Node = n
	w.res.Found = true
	w.res.Depth = depth

	path := make([]T, 0, depth+1)
	for i := len(w.links) - 1; i >= 0; i = w.links[i].parent {
		path = append(path, w.links[i].node.Value)
	}
	// reverse to get root → match
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	w.res.Path = path

	if ce := w.opts.Logger.Check(zapcore.DebugLevel, "bfs: match"); ce != nil {
		ce.Write(zap.Any("value", n.Value), zap.Int("depth", depth), zap.Int("visited", len(w.res.Order)))
	}
}
