// SPDX-License-Identifier: MIT
// Package: gridwalk/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for the Random layout
)

// BuilderOption customizes layout generation by mutating a builderConfig
// instance before the grid is allocated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for the Random layout.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSize overrides the grid dimensions. Predefined layouts only accept the
// default DefaultRows×DefaultCols.
// Panics if rows or cols is below MinGridDim.
func WithSize(rows, cols int) BuilderOption {
	if rows < MinGridDim || cols < MinGridDim {
		panic("builder: WithSize(rows<1 || cols<1)")
	}
	return func(c *builderConfig) {
		c.rows, c.cols = rows, cols
	}
}

// WithMaxAttempts bounds how many full layouts RandomObstacles may discard
// before giving up with ErrConstructFailed. Panics if n < 1.
func WithMaxAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}
