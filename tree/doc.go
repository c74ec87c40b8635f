// SPDX-License-Identifier: MIT
// Package: lvtree/tree
//
// Package tree defines the general ordered tree searched by the bfs and dfs
// packages.
//
// What
//
//   - Node[T] holds a Value and an ordered slice of owned Children.
//   - Equal[T] is the value equality used by every search in this module.
//   - Size and Height measure the part of the tree reachable from a node.
//
// Ownership
//
//	A node exclusively owns its children. Searches never mutate a tree, so a
//	fully built tree may be read from any number of goroutines. Building or
//	mutating a tree while it is being searched is not synchronized.
//
// Absent values
//
//	Node values are compared with ==. When T is a pointer or interface type
//	(for example Node[any] decoded from a document), nil acts as the absent
//	value: nil equals nil, and nil never equals a present value.
//
// Usage
//
//	root := tree.New(7,
//	    tree.New(6, tree.New(2), tree.New(4)),
//	    tree.New(3, tree.New(10), tree.New(19)),
//	)
//	fmt.Println(root.Size(), root.Height()) // 7 2
package tree
