// Package lvtree is an in-memory toolkit for searching general ordered trees.
//
// What is inside?
//
//	tree/      - generic Node[T] with ordered, owned children and null-safe Equal
//	bfs/       - breadth-first search: Find/FindFunc and the stateful Searcher
//	dfs/       - depth-first (pre-order) counterpart with the same rules
//	builder/   - deterministic fixtures: Chain, Star, Complete, Random
//	treeio/    - YAML/JSON tree documents
//	cmd/treesearch - command-line front end
//
// Searches stop at the first match, record each distinct value once in
// visit order, and skip nodes whose value was already visited together with
// their subtrees.
//
// Quick example:
//
//	      7
//	    /   \
//	   6     3
//	  / \   / \
//	 2   4 10  19
//
//	res, _ := bfs.Find(root, 3)   // res.Order == [7 6 3]
//
//	go get github.com/katalvlaran/lvtree
package lvtree
