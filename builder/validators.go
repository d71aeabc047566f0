// Package builder provides validation helpers to enforce
// parameter contracts in layout constructors.
//
// Each function returns a wrapped sentinel via builderErrorf
// when its precondition is violated.
package builder

// validateSize ensures both dimensions are ≥ MinGridDim.
// Complexity: O(1) time and space.
func validateSize(method string, rows, cols int) error {
	if rows < MinGridDim || cols < MinGridDim {
		return builderErrorf(method, ErrBadSize, "rows=%d, cols=%d (each must be ≥ %d)", rows, cols, MinGridDim)
	}

	return nil
}

// validateExactSize ensures g has exactly rows×cols cells.
// Used by FromRows so a fixed layout is never silently cropped.
func validateExactSize(method string, gotRows, gotCols, rows, cols int) error {
	if gotRows != rows || gotCols != cols {
		return builderErrorf(method, ErrBadSize, "layout is %d×%d, grid is %d×%d", rows, cols, gotRows, gotCols)
	}

	return nil
}

// validateRandomSpan ensures Random can separate its endpoints.
func validateRandomSpan(method string, rows, cols int) error {
	if rows+cols < MinRandomSpan {
		return builderErrorf(method, ErrBadSize, "rows+cols=%d < %d", rows+cols, MinRandomSpan)
	}

	return nil
}
