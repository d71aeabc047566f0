// Package grid provides the cell matrix that path finders mutate and
// renderers read. It supports:
//
//   - Four-connectivity neighbor queries (no diagonals, no wraparound)
//   - In-place marking with recoverable original kinds
//   - Restoring every search mark in one pass
//   - Row-major lookup of the unique Start and End cells
package grid

import (
	"fmt"
	"strings"
)

// offsets4 lists neighbor offsets as {dx, dy}: right, left, down, up.
// The order is part of the contract: it fixes tie-breaks in every search.
var offsets4 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// rows[y][x]. It deep-copies the input.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadWeight for an obstacle
// weight outside [0, MaxWeight] and ErrMarkedCell for a pre-marked cell.
// Complexity: O(W×H) time and memory.
func New(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]Cell, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, c := range row {
			if c.Marked() {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrMarkedCell, c.Mark, x, y)
			}
			if c.Kind == Obstacle && (c.Weight < 0 || c.Weight > MaxWeight) {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadWeight, c.Weight, x, y)
			}
		}
		cells[y] = make([]Cell, w)
		copy(cells[y], row)
	}

	return &Grid{width: w, height: h, cells: cells, neighborOffsets: offsets4}, nil
}

// NewFilled returns a width×height grid of Free cells.
// Non-positive dimensions are clamped to 1.
func NewFilled(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	return &Grid{width: width, height: height, cells: cells, neighborOffsets: offsets4}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// CellAt returns the cell at c. c must be in bounds.
func (g *Grid) CellAt(c Coord) Cell {
	return g.cells[c.Y][c.X]
}

// Set overwrites the cell at c. c must be in bounds.
func (g *Grid) Set(c Coord, cell Cell) {
	g.cells[c.Y][c.X] = cell
}

// Neighbors returns the orthogonally adjacent in-bounds cells of c, in the
// order right, left, down, up.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Neighbor {
	out := make([]Neighbor, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.InBounds(n) {
			continue
		}
		out = append(out, Neighbor{Coord: n, Cell: g.cells[n.Y][n.X]})
	}

	return out
}

// Restore replaces every Visited or OnPath cell by its original kind.
// Unmarked cells are untouched.
// Complexity: O(W×H).
func (g *Grid) Restore() {
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x].Marked() {
				g.cells[y][x] = g.cells[y][x].Original()
			}
		}
	}
}

// Locate scans row-major for the first cell whose original kind is k.
// Marks are ignored, so Start and End are found mid-search too.
func (g *Grid) Locate(k Kind) (Coord, bool) {
	for y, row := range g.cells {
		for x, c := range row {
			if c.Original().Kind == k {
				return Coord{X: x, Y: y}, true
			}
		}
	}

	return Coord{}, false
}

// Clone returns a deep copy of the grid, marks included.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.height)
	for y := range g.cells {
		cells[y] = make([]Cell, g.width)
		copy(cells[y], g.cells[y])
	}

	return &Grid{width: g.width, height: g.height, cells: cells, neighborOffsets: g.neighborOffsets}
}

// Count returns how many cells satisfy keep.
func (g *Grid) Count(keep func(Cell) bool) int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if keep(c) {
				n++
			}
		}
	}

	return n
}

// String renders one line per row using Cell.Symbol.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for _, row := range g.cells {
		for _, c := range row {
			b.WriteByte(c.Symbol())
		}
		b.WriteByte('\n')
	}

	return b.String()
}
