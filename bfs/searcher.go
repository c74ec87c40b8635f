// SPDX-License-Identifier: MIT
// Package: lvtree/bfs

package bfs

import (
	"sync"

	"github.com/katalvlaran/lvtree/tree"
)

// Searcher is the stateful form of Find: it remembers the visited order of
// its most recent Search. The zero value is ready to use.
//
// Each Search resets the session state before traversing, so calls never
// observe each other. A mutex held for the whole call makes one Searcher safe
// to share between goroutines; calls on it are serialized.
type Searcher[T comparable] struct {
	mu    sync.Mutex
	order []T
	seen  map[T]struct{}
	w     walker[T]
}

// NewSearcher returns an empty Searcher.
func NewSearcher[T comparable]() *Searcher[T] {
	return &Searcher[T]{}
}

// Search returns the first node, in breadth-first left-to-right order, whose
// value equals target, and whether one was found. A nil root is "not found"
// and leaves the visited order empty. So does a target or reachable node
// value that cannot be compared (a slice or map held in an interface).
func (s *Searcher[T]) Search(root *tree.Node[T], target T) (*tree.Node[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seen == nil {
		s.seen = make(map[T]struct{})
	}
	s.w.opts = DefaultOptions()
	s.w.match = func(v T) bool { return tree.Equal(v, target) }
	s.w.reset(s.order, s.seen)

	// default options carry no hooks or deadline; only uncomparable values fail
	if tree.CheckComparable(target) != nil || s.w.run(root) != nil {
		s.order = s.w.res.Order[:0]
		return nil, false
	}
	s.order = s.w.res.Order

	return s.w.res.Node, s.w.res.Found
}

// VisitedOrder returns a copy of the values visited by the most recent Search,
// in visit order. Before the first Search it is empty.
func (s *Searcher[T]) VisitedOrder() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]T, len(s.order))
	copy(out, s.order)

	return out
}
