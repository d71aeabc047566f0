// SPDX-License-Identifier: MIT
// Package: gridwalk/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGrid(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Layout factories are declared here and implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same layout, options and seed ⇒ identical grids.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Constructor applies a deterministic mutation to a freshly allocated,
// all-Free grid sized by the resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *grid.Grid, cfg builderConfig) error

// Layout selects one of the three generation modes.
type Layout int

const (
	// Predefined1 is the first hardcoded 10×10 layout: start and end on the
	// top row, separated by a heavy wall with a single lighter gap.
	Predefined1 Layout = iota
	// Predefined2 is the second hardcoded 10×10 layout: a heavy U-shaped
	// barrier between a bottom-left start and a top-right end.
	Predefined2
	// Random places weight-1 obstacles and well separated endpoints using the
	// configured RNG.
	Random
)

var layoutNames = map[Layout]string{
	Predefined1: "predefined1",
	Predefined2: "predefined2",
	Random:      "random",
}

// String returns the lower-case layout name used in configs and logs.
func (l Layout) String() string {
	if s, ok := layoutNames[l]; ok {
		return s
	}
	return fmt.Sprintf("layout(%d)", int(l))
}

// ParseLayout is the inverse of Layout.String.
// Returns ErrUnknownLayout for any other name.
func ParseLayout(s string) (Layout, error) {
	for l, name := range layoutNames {
		if name == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownLayout)
}

// BuildGrid allocates an all-Free grid of the configured size, applies all
// constructors in order, and checks that the result has exactly one Start
// and one End.
// Any constructor error is wrapped with the context "BuildGrid: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Allocation and endpoint check: O(R×C).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrBadSize, ErrNeedRandSource, ErrConstructFailed).
func BuildGrid(bopts []BuilderOption, cons ...Constructor) (*grid.Grid, error) {
	cfg := newBuilderConfig(bopts...)
	if err := validateSize(MethodBuildGrid, cfg.rows, cfg.cols); err != nil {
		return nil, err
	}
	g := grid.NewFilled(cfg.cols, cfg.rows)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGrid: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGrid: %w", err)
		}
	}

	if _, ok := g.Locate(grid.Start); !ok {
		return nil, fmt.Errorf("BuildGrid: no start cell: %w", ErrConstructFailed)
	}
	if _, ok := g.Locate(grid.End); !ok {
		return nil, fmt.Errorf("BuildGrid: no end cell: %w", ErrConstructFailed)
	}
	for _, k := range []grid.Kind{grid.Start, grid.End} {
		if n := g.Count(func(c grid.Cell) bool { return c.Kind == k }); n > 1 {
			return nil, fmt.Errorf("BuildGrid: %d %v cells: %w", n, k, ErrConstructFailed)
		}
	}

	return g, nil
}

// Build produces the grid for layout. Random layouts need WithSeed or
// WithRand; predefined layouts ignore the RNG and require the default size.
func Build(layout Layout, opts ...BuilderOption) (*grid.Grid, error) {
	switch layout {
	case Predefined1:
		return BuildGrid(opts, FromRows(MethodPredefined1, predefined1Rows))
	case Predefined2:
		return BuildGrid(opts, FromRows(MethodPredefined2, predefined2Rows))
	case Random:
		return BuildGrid(opts, RandomObstacles())
	default:
		return nil, fmt.Errorf("Build: %v: %w", layout, ErrUnknownLayout)
	}
}

// =============================================================================
// Layout factories (declarations) - implemented in impl_*.go
// =============================================================================

// FromRows copies an ASCII layout (grid.Parse symbols) into g. The layout
// must match g's size exactly.
// Complexity: O(R×C).
//func FromRows(method string, rows []string) Constructor

// RandomObstacles scatters weight-1 obstacles and places Start and End at a
// Manhattan distance of at least (R+C)/2, retrying up to cfg.maxAttempts.
// Complexity: O(R×C) expected per attempt.
//func RandomObstacles() Constructor
