// Package search holds the bookkeeping shared by every stepping path finder
// and the contract they implement.
//
// What
//
//   - State wraps a *grid.Grid with the start and end coordinates, a
//     backpointer map (cameFrom), a visited counter and a completion flag.
//   - Path is the read-only summary built once the destination is reached.
//   - PathFinder is the stepping protocol: one Step performs one bounded unit
//     of work (at most one node expansion) and reports whether the
//     destination was reached by that call.
//   - Options carries observability hooks (OnCreate, OnExpand, OnComplete,
//     OnExhausted); every hook defaults to a no-op.
//
// State machine
//
//	Idle ──Step──▶ Stepping ──▶ Completed
//	                   │
//	                   └──────▶ Exhausted
//
// Idle is the state right after construction or Reset. Completed is entered
// the instant the destination gets a valid predecessor; Exhausted when the
// frontier empties first. Step in either terminal state is a no-op.
//
// Invariants
//
//   - cameFrom[start] == {start, 0} after construction and after Reset.
//   - The visited counter grows by exactly one per cell that becomes Visited.
//   - BuildPath relabels only intermediate cells; Start and End keep their kind.
//
// Errors
//
//   - ErrNilGrid     the grid pointer is nil.
//   - ErrNoStart     the grid has no Start cell.
//   - ErrNoEnd       the grid has no End cell.
//   - ErrBrokenPath  path reconstruction hit a missing or cyclic backpointer.
//   - ErrNotCompleted BuildPath was called before the destination was reached.
package search
