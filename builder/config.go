// SPDX-License-Identifier: MIT
// Package: gridwalk/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil          (Random needs WithSeed/WithRand)
//   • rows, cols  = 10, 10
//   • maxAttempts = 64

package builder

import (
	"math/rand" // RNG for the Random layout
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Grid dimensions.
	rows int
	cols int

	// Upper bound on discarded Random layouts.
	maxAttempts int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		rows:        DefaultRows,
		cols:        DefaultCols,
		maxAttempts: defaultMaxAttempts,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
