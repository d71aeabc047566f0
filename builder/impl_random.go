// SPDX-License-Identifier: MIT
// Package: gridwalk/builder
//
// impl_random.go - implementation of the RandomObstacles() constructor.
//
// Canonical model:
//   1. Draw k uniformly in [1, R×C/2] and turn k distinct Free cells into
//      weight-1 obstacles.
//   2. Put Start on a uniformly drawn Free cell.
//   3. Draw End cells until one is Free and at Manhattan distance ≥ (R+C)/2
//      from Start.
//   If step 3 fails endTriesPerCell×R×C times the attempt is discarded and
//   the grid cleared; after cfg.maxAttempts attempts ErrConstructFailed.
//
// Contract:
//   • R+C ≥ MinRandomSpan (else ErrBadSize).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   • Every draw comes from cfg.rng in a fixed order, so a fixed seed
//     reproduces the same grid.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridwalk/grid"
)

// RandomObstacles returns a Constructor for the Random layout.
func RandomObstacles() Constructor {
	return func(g *grid.Grid, cfg builderConfig) error {
		rows, cols := g.Height(), g.Width()
		if err := validateRandomSpan(MethodRandom, rows, cols); err != nil {
			return err
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
		}

		for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
			if placeRandom(g, cfg.rng) {
				return nil
			}
			resetFree(g)
		}

		return builderErrorf(MethodRandom, ErrConstructFailed, "no layout after %d attempts", cfg.maxAttempts)
	}
}

// placeRandom runs one attempt on an all-Free g and reports success.
func placeRandom(g *grid.Grid, rng *rand.Rand) bool {
	rows, cols := g.Height(), g.Width()
	draw := func() grid.Coord {
		return grid.Coord{X: rng.Intn(cols), Y: rng.Intn(rows)}
	}

	// 1) Obstacles. At most half the cells, so rejection sampling terminates.
	want := 1 + rng.Intn(rows*cols/2)
	for placed := 0; placed < want; {
		c := draw()
		if g.CellAt(c).Is(grid.Free) {
			g.Set(c, grid.ObstacleCell(RandomObstacleWeight))
			placed++
		}
	}

	// 2) Start on any Free cell.
	var start grid.Coord
	for {
		start = draw()
		if g.CellAt(start).Is(grid.Free) {
			g.Set(start, grid.StartCell())
			break
		}
	}

	// 3) End far enough from Start.
	minDist := (rows + cols) / 2
	for try := 0; try < endTriesPerCell*rows*cols; try++ {
		end := draw()
		if start.Manhattan(end) < minDist {
			continue
		}
		if g.CellAt(end).Is(grid.Free) {
			g.Set(end, grid.EndCell())
			return true
		}
	}

	return false
}

// resetFree resets every cell of g to Free.
func resetFree(g *grid.Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			g.Set(grid.Coord{X: x, Y: y}, grid.FreeCell())
		}
	}
}
