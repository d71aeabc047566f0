package search

import "github.com/katalvlaran/gridwalk/grid"

// PathFinder is the stepping protocol shared by every algorithm.
//
// Step performs one bounded unit of work: it expands at most one node
// (stale frontier entries are discarded within the same call) and reports
// whether the destination was reached by this call. On that call the path is
// built and Completed turns true. Once Completed or Exhausted, Step is a
// no-op returning (false, nil). A non-nil error signals a data invariant
// violation; the step is aborted without mutating the search.
type PathFinder interface {
	// Name identifies the algorithm, e.g. "bfs".
	Name() string

	// Step advances the search by one unit of work.
	Step() (bool, error)

	// Reset restores the grid and reseeds the frontier from start.
	Reset()

	// ResetWith discards the current state and rebuilds it over g.
	ResetWith(g *grid.Grid) error

	// Grid exposes the owned grid read-only.
	Grid() grid.View

	// CellAt returns the live cell at c.
	CellAt(c grid.Coord) grid.Cell

	// Completed reports whether the destination was reached.
	Completed() bool

	// Status reports the position in the Idle/Stepping/Completed/Exhausted machine.
	Status() Status

	// Path returns the reconstructed path once completed.
	Path() (Path, bool)

	// Visited returns how many cells were expanded, start excluded.
	Visited() int
}

// Tick is an alias of Step for drivers that speak in ticks.
func Tick(f PathFinder) (bool, error) {
	return f.Step()
}

// StatusOf derives the state-machine position from a finder's counters.
func StatusOf(steps int, completed, exhausted bool) Status {
	switch {
	case completed:
		return StatusCompleted
	case exhausted:
		return StatusExhausted
	case steps == 0:
		return StatusIdle
	default:
		return StatusStepping
	}
}

// Run steps f until it settles or maxSteps calls were made (maxSteps <= 0
// means no limit). It returns the number of Step calls made.
func Run(f PathFinder, maxSteps int) (int, error) {
	n := 0
	for !f.Status().Terminal() {
		if maxSteps > 0 && n >= maxSteps {
			break
		}
		if _, err := f.Step(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
