// Package dfs defines types and options for depth-first search over a
// tree.Node, including cancellation, a pre-order hook, depth limiting and
// debug logging.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvtree/tree"
)

var (
	// ErrNilMatch is returned by FindFunc when the match predicate is nil.
	ErrNilMatch = errors.New("dfs: match predicate is nil")

	// ErrOptionViolation indicates a hook whose value type does not match the
	// searched tree.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with Find(root, target, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// MaxDepth, if non-negative, limits descent to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// Logger receives debug records for visited nodes; defaults to a no-op.
	Logger *zap.Logger

	// onVisit is a func(T, int) error checked against the tree's type at start.
	onVisit any
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
//   - A no-op logger
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
		Logger:   zap.NewNop(),
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the root is visited; negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithLogger returns an Option that routes debug records to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *DFSOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook,
// called when a node's value is first recorded. An error aborts traversal.
func WithOnVisit[T comparable](fn func(value T, depth int) error) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}
// resolveHook returns the typed OnVisit hook for value type T, nil when none
// was installed.
func resolveHook[T comparable](o DFSOptions) (func(T, int) error, error) {
	if o.onVisit == nil {
		return nil, nil
	}
	fn, ok := o.onVisit.(func(T, int) error)
	if !ok {
		return nil, fmt.Errorf("%w: OnVisit hook has type %T", ErrOptionViolation, o.onVisit)
	}

	return fn, nil
}

// DFSResult captures the outcome of a depth-first search.
type DFSResult[T comparable] struct {
	// Node is the first node in pre-order whose value matched; nil otherwise.
	Node *tree.Node[T]

	// Found reports whether Node is set.
	Found bool

	// Order records distinct values in pre-order (discovery) sequence,
	// ending with the match if any.
	Order []T

	// Depth is the match's distance from the root, -1 when not found.
	Depth int
}
