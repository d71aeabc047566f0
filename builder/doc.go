// Package builder produces the initial grid.Grid for a search session using
// “functional-options”-style building blocks.
//
// The package offers the following key components:
//
//   - Layouts:
//     – Predefined1, Predefined2: fixed 10×10 layouts with weighted walls.
//     – Random:                  weight-1 obstacles and well separated endpoints.
//   - Orchestration:
//     – Build(layout, opts...):  one call per layout.
//     – BuildGrid(opts, cons...): composes arbitrary Constructors.
//   - Configuration primitives:
//     – BuilderOption:  WithSeed, WithRand, WithSize, WithMaxAttempts.
//     – builderConfig:  holds RNG, dimensions and the attempt bound.
//   - Validation helpers:
//     – validateSize, validateExactSize, validateRandomSpan.
//
// Guarantees:
//
//   - Every grid returned without error has exactly one Start and one End.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Structured runtime errors (builderErrorf) wrapping the sentinels
//     ErrBadSize, ErrNeedRandSource, ErrConstructFailed and ErrUnknownLayout.
//   - Same layout, options and seed ⇒ identical grid.
package builder
