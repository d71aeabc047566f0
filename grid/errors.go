package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadWeight indicates an obstacle weight outside [0, MaxWeight].
	ErrBadWeight = errors.New("grid: obstacle weight out of range")
	// ErrMarkedCell indicates an input cell that already carries a search mark.
	ErrMarkedCell = errors.New("grid: input cell must not be marked")
	// ErrBadSymbol indicates an unknown character in the ASCII form.
	ErrBadSymbol = errors.New("grid: unknown cell symbol")
)
