// SPDX-License-Identifier: MIT
// Package: lvtree/bfs
//
// types.go - options, sentinel errors and the Result of a breadth-first search.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/tree"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNilMatch is returned by FindFunc when the match predicate is nil.
	ErrNilMatch = errors.New("bfs: match predicate is nil")
)

// Option configures a Find/FindFunc call via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per dequeued node.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring below this depth (root is depth 0).
	// A value of 0 disables the limit.
	MaxDepth int

	// Logger receives debug records for every visited and skipped node.
	Logger *zap.Logger

	// onVisit and onSkip hold typed hooks (func(T, int) ...). They are checked
	// against the tree's value type when the search starts.
	onVisit any
	onSkip  any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - a no-op logger
//   - no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		Logger:   zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search below the given depth.
//
//	d > 0: nodes deeper than d are never enqueued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger routes traversal debug records to l. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a callback run each time a node's value is recorded
// as visited, root included. Returning an error stops the search.
// The hook's value type must match the searched tree, otherwise the search
// fails with ErrOptionViolation.
func WithOnVisit[T comparable](fn func(value T, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithOnSkip registers a callback run when a dequeued node is skipped because
// its value was already visited.
func WithOnSkip[T comparable](fn func(value T, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onSkip = fn
		}
	}
}

// Result holds the outcome of a breadth-first search:
//   - Node:  the matching node, nil when nothing matched.
//   - Found: whether a match was found.
//   - Order: distinct values in visit order, ending with the match if any.
//   - Depth: depth of the match (root = 0), -1 when not found.
//   - Path:  values on the path root → match, nil when not found.
type Result[T comparable] struct {
	Node  *tree.Node[T]
	Found bool
	Order []T
	Depth int
	Path  []T
}
