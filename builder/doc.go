// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// Package builder generates deterministic string-valued trees for tests,
// benchmarks, examples and the treesearch CLI.
//
// What
//
//   - Build(shape, opts...) resolves options into a config and runs one Shape.
//   - Shapes: Chain(n), Star(n), Complete(arity, depth), Random(n).
//   - Node values come from a ValueFn applied to the node's creation index;
//     every shape creates nodes in breadth-first order, so index 0 is the root.
//   - Random(n) needs an RNG (WithSeed / WithRand) and is reproducible for a
//     fixed seed.
//
// Duplicate values
//
//	ModuloValue(k) repeats values every k nodes, which is how fixtures with
//	repeated values (the interesting case for bfs/dfs) are produced.
//
// Errors
//
//	Shapes return sentinel errors wrapped with the shape name; branch with
//	errors.Is against ErrTooFewNodes, ErrInvalidArity, ErrInvalidDepth,
//	ErrNeedRandSource or ErrNilShape. Option constructors panic on
//	meaningless input (nil functions, non-positive moduli).
package builder
