package driver

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Snapshot is the renderer-facing, JSON-encodable view of a Session.
//
// Cells holds one string per row in layout symbols (S, E, '.', obstacle
// weight digit). Marks holds the overlay per row: '.' unmarked, 'O' visited,
// '*' on the path.
type Snapshot struct {
	Algorithm string        `json:"algorithm"`
	Layout    string        `json:"layout"`
	Status    string        `json:"status"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Cells     []string      `json:"cells"`
	Marks     []string      `json:"marks"`
	Visited   int           `json:"visited"`
	Path      *PathSnapshot `json:"path,omitempty"`
}

// PathSnapshot mirrors search.Path.
type PathSnapshot struct {
	Length int      `json:"length"`
	Hops   int      `json:"hops"`
	Cells  [][2]int `json:"cells"`
}

var markSymbols = map[grid.Mark]byte{
	grid.Unmarked: '.',
	grid.Visited:  'O',
	grid.OnPath:   '*',
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	f := s.finder
	v := f.Grid()
	snap := Snapshot{
		Algorithm: s.algorithm.String(),
		Layout:    s.layout.String(),
		Status:    f.Status().String(),
		Width:     v.Width(),
		Height:    v.Height(),
		Cells:     make([]string, v.Height()),
		Marks:     make([]string, v.Height()),
		Visited:   f.Visited(),
	}

	cells := make([]byte, v.Width())
	marks := make([]byte, v.Width())
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			c := v.CellAt(grid.Coord{X: x, Y: y})
			cells[x] = c.LayoutSymbol()
			marks[x] = markSymbols[c.Mark]
		}
		snap.Cells[y] = string(cells)
		snap.Marks[y] = string(marks)
	}

	if p, ok := f.Path(); ok {
		snap.Path = newPathSnapshot(p)
	}

	return snap
}

func newPathSnapshot(p search.Path) *PathSnapshot {
	ps := &PathSnapshot{Length: p.Length, Hops: p.Hops(), Cells: make([][2]int, len(p.Cells))}
	for i, c := range p.Cells {
		ps.Cells[i] = [2]int{c.X, c.Y}
	}

	return ps
}
