// SPDX-License-Identifier: MIT
// Package: lvtree/tree

package tree

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUncomparableValue is returned when a value's dynamic type (a slice, map
// or func held in an interface) cannot be compared with == or hashed.
var ErrUncomparableValue = errors.New("tree: value is not comparable")

// Node is one vertex of a general (non-binary) ordered tree.
//
// Children are kept in insertion order; traversals rely on that order to be
// deterministic. A nil *Node is a valid empty tree for every search.
type Node[T comparable] struct {
	// Value carried by the node. Values may repeat across nodes.
	Value T

	// Children owned by this node, left to right.
	Children []*Node[T]
}

// New returns a node carrying value with the given children attached in order.
// Nil children are dropped.
func New[T comparable](value T, children ...*Node[T]) *Node[T] {
	n := &Node[T]{Value: value}
	n.Add(children...)

	return n
}

// Add appends children to n in order, skipping nil entries, and returns n
// so calls can be chained while building fixtures.
func (n *Node[T]) Add(children ...*Node[T]) *Node[T] {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.Children = append(n.Children, c)
	}

	return n
}

// IsLeaf reports whether n has no children. A nil node is not a leaf.
func (n *Node[T]) IsLeaf() bool {
	return n != nil && len(n.Children) == 0
}

// Size returns the number of distinct nodes reachable from n, n included.
// A node reachable through several parents is counted once; nil children
// are ignored.
// Complexity: O(N) time, O(N) space.
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}
	seen := map[*Node[T]]struct{}{n: {}}
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range cur.Children {
			if c == nil {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			stack = append(stack, c)
		}
	}

	return len(seen)
}

// Height returns the number of edges on the longest downward path from n.
// A single node has height 0; a nil node has height -1. A subtree shared by
// several parents contributes through each of them. An edge back to a node
// already on the current path is ignored, so a cyclic structure terminates.
// Complexity: O(N) time, O(N) space.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	h := heightWalk[T]{
		memo:   make(map[*Node[T]]int),
		onPath: make(map[*Node[T]]struct{}),
	}

	return h.height(n)
}

// heightWalk memoizes subtree heights so shared subtrees are measured once.
type heightWalk[T comparable] struct {
	memo   map[*Node[T]]int
	onPath map[*Node[T]]struct{}
}

func (h *heightWalk[T]) height(n *Node[T]) int {
	if v, ok := h.memo[n]; ok {
		return v
	}
	h.onPath[n] = struct{}{}
	best := 0
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if _, cyc := h.onPath[c]; cyc {
			continue
		}
		if d := h.height(c) + 1; d > best {
			best = d
		}
	}
	delete(h.onPath, n)
	h.memo[n] = best

	return best
}

// Equal reports whether a and b carry the same value.
// For pointer and interface types nil equals only nil.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// CheckComparable returns ErrUncomparableValue when v, seen through an
// interface, has a dynamic type that would panic under == or as a map key.
// Values of non-interface types always pass.
func CheckComparable[T comparable](v T) error {
	dyn := any(v)
	if dyn == nil {
		return nil
	}
	if t := reflect.TypeOf(dyn); !t.Comparable() {
		return fmt.Errorf("%w: %s", ErrUncomparableValue, t)
	}

	return nil
}
