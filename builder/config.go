// SPDX-License-Identifier: MIT
// Package: lvtree/builder
//
// config.go - builder configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   - valueFn = DecimalValue ("0","1","2",...)
//   - rng     = nil (pure/deterministic unless seeded)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by shapes.
// It is passed by value to shapes.
type builderConfig struct {
	// Node value strategy: creation index -> value.
	valueFn ValueFn
	// RNG for stochastic shapes; nil means "no randomness".
	rng     *rand.Rand
}

// BuilderOption customizes Build by mutating a builderConfig before the
// shape runs.
type BuilderOption func(*builderConfig)

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		valueFn: DecimalValue,
		rng:     nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithValueScheme sets the node value generator. Panics on nil.
func WithValueScheme(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueScheme(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic shapes. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
