package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridwalk/grid"
)

//----------------------------------------------------------------------------//
// New and Parse
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty, ragged and invalid inputs.
func TestNew_Errors(t *testing.T) {
	f := grid.FreeCell()
	cases := []struct {
		name string
		rows [][]grid.Cell
		err  error
	}{
		{"EmptyRows", [][]grid.Cell{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.Cell{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]grid.Cell{{f, f}, {f}}, grid.ErrNonRectangular},
		{"WeightTooHigh", [][]grid.Cell{{grid.ObstacleCell(4)}}, grid.ErrBadWeight},
		{"WeightNegative", [][]grid.Cell{{grid.ObstacleCell(-1)}}, grid.ErrBadWeight},
		{"Marked", [][]grid.Cell{{{Mark: grid.Visited}}}, grid.ErrMarkedCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopies ensures later edits of the input do not leak into the grid.
func TestNew_DeepCopies(t *testing.T) {
	rows := [][]grid.Cell{{grid.StartCell(), grid.EndCell()}}
	g, err := grid.New(rows)
	require.NoError(t, err)

	rows[0][0] = grid.ObstacleCell(2)
	assert.Equal(t, grid.StartCell(), g.CellAt(grid.Coord{X: 0, Y: 0}))
}

// TestParse_RoundTrip checks Parse against String for weight-1 obstacles.
func TestParse_RoundTrip(t *testing.T) {
	src := "S.X\n.X.\n..E\n"
	g, err := grid.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, src, g.String())
	assert.Equal(t, grid.ObstacleCell(1), g.CellAt(grid.Coord{X: 2, Y: 0}))
}

// TestParse_Weights checks the digit form of obstacle weights.
func TestParse_Weights(t *testing.T) {
	g := grid.MustParse("S0123E")
	for x := 1; x <= 4; x++ {
		assert.Equal(t, grid.ObstacleCell(x-1), g.CellAt(grid.Coord{X: x, Y: 0}))
	}
	assert.Equal(t, "SXXXXE\n", g.String())
}

// TestParse_BadSymbol rejects unknown characters, including mark symbols.
func TestParse_BadSymbol(t *testing.T) {
	for _, src := range []string{"S?E", "SOE", "S*E", "S4E"} {
		_, err := grid.Parse(src)
		assert.ErrorIs(t, err, grid.ErrBadSymbol, src)
	}
}

//----------------------------------------------------------------------------//
// Neighbors, InBounds, Locate
//----------------------------------------------------------------------------//

// TestNeighbors_Order pins the right, left, down, up order and clipping.
func TestNeighbors_Order(t *testing.T) {
	g := grid.NewFilled(3, 3)

	coords := func(ns []grid.Neighbor) []grid.Coord {
		out := make([]grid.Coord, len(ns))
		for i, n := range ns {
			out[i] = n.Coord
		}
		return out
	}

	assert.Equal(t,
		[]grid.Coord{{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 0}},
		coords(g.Neighbors(grid.Coord{X: 1, Y: 1})))
	assert.Equal(t,
		[]grid.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}},
		coords(g.Neighbors(grid.Coord{X: 0, Y: 0})))
	assert.Equal(t,
		[]grid.Coord{{X: 1, Y: 2}, {X: 2, Y: 1}},
		coords(g.Neighbors(grid.Coord{X: 2, Y: 2})))
}

// TestNeighbors_SingleCell has no neighbors at all.
func TestNeighbors_SingleCell(t *testing.T) {
	g := grid.NewFilled(1, 1)
	assert.Empty(t, g.Neighbors(grid.Coord{}))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g := grid.NewFilled(3, 2)
	for _, c := range []grid.Coord{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}} {
		assert.True(t, g.InBounds(c), c)
	}
	for _, c := range []grid.Coord{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}} {
		assert.False(t, g.InBounds(c), c)
	}
}

// TestLocate finds the first row-major match and reports absence.
func TestLocate(t *testing.T) {
	g := grid.MustParse(`
		...
		.S.
		E.E`)
	s, ok := g.Locate(grid.Start)
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 1, Y: 1}, s)

	e, ok := g.Locate(grid.End)
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 0, Y: 2}, e)

	// A mark does not hide the original kind.
	g.Set(grid.Coord{X: 2, Y: 0}, grid.Cell{Mark: grid.Visited, Kind: grid.Obstacle, Weight: 2})
	o, ok := g.Locate(grid.Obstacle)
	require.True(t, ok)
	assert.Equal(t, grid.Coord{X: 2, Y: 0}, o)

	_, ok = grid.NewFilled(2, 2).Locate(grid.Start)
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Marks, Restore, Clone
//----------------------------------------------------------------------------//

// TestRestore unwraps Visited and OnPath cells and leaves the rest alone.
func TestRestore(t *testing.T) {
	g := grid.MustParse("S.2.E")
	before := g.String()

	visited := g.CellAt(grid.Coord{X: 1, Y: 0})
	visited.Mark = grid.Visited
	g.Set(grid.Coord{X: 1, Y: 0}, visited)

	onPath := g.CellAt(grid.Coord{X: 2, Y: 0})
	onPath.Mark = grid.OnPath
	g.Set(grid.Coord{X: 2, Y: 0}, onPath)

	assert.Equal(t, "SO*.E\n", g.String())
	assert.Equal(t, 2, g.Count(grid.Cell.Marked))

	g.Restore()
	assert.Equal(t, before, g.String())
	assert.Equal(t, grid.ObstacleCell(2), g.CellAt(grid.Coord{X: 2, Y: 0}))
	assert.Zero(t, g.Count(grid.Cell.Marked))
}

// TestCell_Original keeps kind and weight under a mark.
func TestCell_Original(t *testing.T) {
	c := grid.Cell{Mark: grid.OnPath, Kind: grid.Obstacle, Weight: 3}
	assert.True(t, c.Marked())
	assert.False(t, c.Is(grid.Obstacle))
	assert.Equal(t, grid.ObstacleCell(3), c.Original())
	assert.True(t, c.Original().Is(grid.Obstacle))
}

// TestClone is independent of the source grid.
func TestClone(t *testing.T) {
	g := grid.MustParse("S.E")
	c := g.Clone()
	c.Set(grid.Coord{X: 1, Y: 0}, grid.ObstacleCell(0))

	assert.Equal(t, "S.E\n", g.String())
	assert.Equal(t, "SXE\n", c.String())
}

// TestManhattan is symmetric and axis-independent.
func TestManhattan(t *testing.T) {
	a, b := grid.Coord{X: 1, Y: 7}, grid.Coord{X: 4, Y: 2}
	assert.Equal(t, 8, a.Manhattan(b))
	assert.Equal(t, 8, b.Manhattan(a))
	assert.Zero(t, a.Manhattan(a))
}

// TestCell_LayoutSymbol parses back to the original cell, marks dropped.
func TestCell_LayoutSymbol(t *testing.T) {
	g := grid.MustParse("S0123.E")
	var out []byte
	for x := 0; x < g.Width(); x++ {
		c := g.CellAt(grid.Coord{X: x, Y: 0})
		c.Mark = grid.Visited
		out = append(out, c.LayoutSymbol())
	}
	assert.Equal(t, "S0123.E", string(out))
}
