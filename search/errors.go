package search

import "errors"

// Sentinel errors for search state construction and path reconstruction.
var (
	// ErrNilGrid is returned when a nil grid pointer is supplied.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNoStart is returned when the grid has no Start cell.
	ErrNoStart = errors.New("search: grid has no start cell")

	// ErrNoEnd is returned when the grid has no End cell.
	ErrNoEnd = errors.New("search: grid has no end cell")

	// ErrDuplicateEndpoint is returned when the grid has more than one Start
	// or more than one End cell.
	ErrDuplicateEndpoint = errors.New("search: grid has more than one start or end cell")

	// ErrNotCompleted is returned by BuildPath before the destination is reached.
	ErrNotCompleted = errors.New("search: search not completed")

	// ErrBrokenPath is returned when the backpointer chain from end to start
	// is missing a link or loops.
	ErrBrokenPath = errors.New("search: broken backpointer chain")
)
