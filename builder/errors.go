// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Shapes attach context with %w; sentinels are never formatted at definition.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that a size parameter is below the shape's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidArity indicates a Complete tree requested with arity < 1.
var ErrInvalidArity = errors.New("builder: arity must be positive")

// ErrInvalidDepth indicates a negative depth.
var ErrInvalidDepth = errors.New("builder: depth must be non-negative")

// ErrNeedRandSource indicates that a stochastic shape was run without an RNG.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrNilShape indicates Build was called with a nil Shape.
var ErrNilShape = errors.New("builder: nil shape")

// shapeErrorf prefixes err with the shape name and a formatted detail.
func shapeErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
