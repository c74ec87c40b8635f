// Package bfs provides breadth-first search over a tree.Node, returning the
// first node carrying a target value together with the order in which
// distinct values were visited.
//
// What
//
//   - Visit the root, then every node at depth 1 left to right, then depth 2, ...
//   - Stop at the first node whose value matches; nothing past it is visited.
//   - Track visited values in a set. A node whose value was already visited
//     is skipped when dequeued: it is neither recorded nor expanded.
//   - Children are enqueued unconditionally; duplicates are filtered on dequeue.
//
// Two forms
//
//   - Find / FindFunc: stateless, return a *Result (Node, Found, Order, Depth, Path).
//   - Searcher: stateful, Search(root, target) plus VisitedOrder() of the
//     latest call. One instance may be shared; calls are serialized.
//
// Determinism
//
//	Children are enqueued in slice order, so the visit sequence is fully
//	reproducible for a given tree.
//
// Complexity (N = reachable nodes)
//
//   - Time:   O(N)
//   - Memory: O(N) for the queue, visited set and order.
//
// Usage
//
//	res, _ := bfs.Find(root, 3)
//	if res.Found {
//	    fmt.Println(res.Node.Value, res.Order)
//	}
//
//	// With functional options:
//	res, err := bfs.Find(root, 3,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(4),
//	    bfs.WithLogger(logger),
//	    bfs.WithOnVisit(func(v int, depth int) error { return nil }),
//	    bfs.WithOnSkip(func(v int, depth int) {}),
//	)
//
// Errors
//
//   - ErrOptionViolation  if an Option is invalid (negative MaxDepth, hook of the wrong type).
//   - ErrNilMatch         if FindFunc receives a nil predicate.
//   - ctx.Err()           if the context is cancelled mid-search.
//   - Wrapped errors returned by the OnVisit hook.
//
// "Not found" is never an error.
package bfs
