// SPDX-License-Identifier: MIT
// Package: gridwalk/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates grid dimensions that the requested layout cannot use:
// a predefined layout at a non-default size, or a Random grid too small to
// separate its endpoints.
// Usage: if errors.Is(err, ErrBadSize) { /* fix WithSize */ }.
var ErrBadSize = errors.New("builder: invalid grid size")

// ErrNeedRandSource indicates that the Random layout requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempts, or
// produced a grid without a Start or End cell.
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with different seed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownLayout indicates a Layout value or name outside the three modes.
var ErrUnknownLayout = errors.New("builder: unknown layout")

// builderErrorf formats an inner message, prefixes it with the method
// context and wraps sentinel: "<Method>: <message>: <sentinel>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority (tie-break guidance when multiple validations fail):
//    • ErrBadSize          - size checks first.
//    • ErrNeedRandSource   - then RNG presence for Random.
//    • ErrConstructFailed  - only after all attempts are exhausted.
//
// 2) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error strings.
