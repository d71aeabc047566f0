// Package grid defines core types for the grid subpackage of
// github.com/katalvlaran/gridwalk.
package grid

import "fmt"

// MaxWeight is the largest obstacle weight a cell may carry.
const MaxWeight = 3

// Coord addresses a cell: X is the column, Y is the row.
type Coord struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns |c.X-o.X| + |c.Y-o.Y|.
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Kind is the pre-search identity of a cell.
type Kind uint8

const (
	// Free cells are plain walkable ground.
	Free Kind = iota
	// Start marks the origin of the search.
	Start
	// End marks the destination of the search.
	End
	// Obstacle cells carry a Weight; only weighted searches may cross them.
	Obstacle
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Free:
		return "Free"
	case Start:
		return "Start"
	case End:
		return "End"
	case Obstacle:
		return "Obstacle"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Mark is the transient search state layered over a cell's kind.
type Mark uint8

const (
	// Unmarked cells have not been touched by the search.
	Unmarked Mark = iota
	// Visited cells were expanded by the search.
	Visited
	// OnPath cells belong to the reconstructed path.
	OnPath
)

// String returns the mark name.
func (m Mark) String() string {
	switch m {
	case Unmarked:
		return "Unmarked"
	case Visited:
		return "Visited"
	case OnPath:
		return "OnPath"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

// Cell is one grid position. The zero value is an unmarked Free cell.
//
// A marked cell keeps its original Kind and Weight, so a Visited or OnPath
// cell can never wrap another marked cell.
type Cell struct {
	Mark   Mark
	Kind   Kind
	Weight int // meaningful for Obstacle only
}

// FreeCell returns an unmarked Free cell.
func FreeCell() Cell { return Cell{Kind: Free} }

// StartCell returns an unmarked Start cell.
func StartCell() Cell { return Cell{Kind: Start} }

// EndCell returns an unmarked End cell.
func EndCell() Cell { return Cell{Kind: End} }

// ObstacleCell returns an unmarked Obstacle cell of weight w.
// Weights are validated by New, Set callers are trusted.
func ObstacleCell(w int) Cell { return Cell{Kind: Obstacle, Weight: w} }

// Original returns the cell with its search mark removed.
func (c Cell) Original() Cell {
	c.Mark = Unmarked
	return c
}

// Marked reports whether the cell carries a Visited or OnPath mark.
func (c Cell) Marked() bool { return c.Mark != Unmarked }

// Is reports whether the cell is unmarked and of kind k.
func (c Cell) Is(k Kind) bool { return c.Mark == Unmarked && c.Kind == k }

// Symbol returns the single-character ASCII form of the cell:
// S start, E end, . free, X obstacle, O visited, * on path.
func (c Cell) Symbol() byte {
	switch c.Mark {
	case Visited:
		return 'O'
	case OnPath:
		return '*'
	}
	switch c.Kind {
	case Start:
		return 'S'
	case End:
		return 'E'
	case Obstacle:
		return 'X'
	default:
		return '.'
	}
}

// LayoutSymbol returns the grid.Parse symbol of the original cell, with
// obstacle weights as digits. Marks are ignored.
func (c Cell) LayoutSymbol() byte {
	switch c.Kind {
	case Start:
		return 'S'
	case End:
		return 'E'
	case Obstacle:
		return byte('0' + c.Weight)
	default:
		return '.'
	}
}

// Neighbor pairs an adjacent coordinate with the cell stored there.
type Neighbor struct {
	Coord Coord
	Cell  Cell
}

// View is the read-only surface of a grid handed to renderers.
type View interface {
	Width() int
	Height() int
	CellAt(c Coord) Cell
}

// Grid is a rectangular matrix of cells, rows indexed by Y and columns by X.
// neighborOffsets is precomputed for adjacency lookups.
type Grid struct {
	width, height   int
	cells           [][]Cell
	neighborOffsets [][2]int
}
