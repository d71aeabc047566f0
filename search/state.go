package search

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// State is the per-search bookkeeping owned by exactly one path finder.
// It is not safe for concurrent use.
type State struct {
	grid       *grid.Grid
	start, end grid.Coord
	cameFrom   map[grid.Coord]Backpointer
	visited    int
	completed  bool
	path       *Path
}

// NewState resolves the Start and End cells of g and seeds the backpointer
// map with cameFrom[start] = {start, 0}. The State takes ownership of g and
// clears any search marks left on it by a previous owner.
// Returns ErrNilGrid, ErrNoStart, ErrNoEnd or ErrDuplicateEndpoint.
func NewState(g *grid.Grid) (*State, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	g.Restore()
	start, ok := g.Locate(grid.Start)
	if !ok {
		return nil, ErrNoStart
	}
	end, ok := g.Locate(grid.End)
	if !ok {
		return nil, ErrNoEnd
	}
	for _, k := range []grid.Kind{grid.Start, grid.End} {
		if n := countKind(g, k); n > 1 {
			return nil, fmt.Errorf("%w: %d %v cells", ErrDuplicateEndpoint, n, k)
		}
	}

	s := &State{grid: g, start: start, end: end}
	s.seed()

	return s, nil
}

func countKind(g *grid.Grid, k grid.Kind) int {
	return g.Count(func(c grid.Cell) bool { return c.Original().Kind == k })
}

// seed (re)initializes cameFrom as at construction.
func (s *State) seed() {
	s.cameFrom = make(map[grid.Coord]Backpointer, s.grid.Width()*s.grid.Height())
	s.cameFrom[s.start] = Backpointer{From: s.start, Cost: 0}
}

// Reset restores the grid's cells to their pre-search kinds and
// reinitializes all bookkeeping. The grid itself is not reallocated.
func (s *State) Reset() {
	s.grid.Restore()
	s.visited = 0
	s.completed = false
	s.path = nil
	s.seed()
}

// Grid returns the owned grid.
func (s *State) Grid() *grid.Grid { return s.grid }

// Start returns the start coordinate.
func (s *State) Start() grid.Coord { return s.start }

// End returns the end coordinate.
func (s *State) End() grid.Coord { return s.end }

// Visited returns how many cells have been marked Visited.
func (s *State) Visited() int { return s.visited }

// Completed reports whether the destination has been reached.
func (s *State) Completed() bool { return s.completed }

// Path returns the built path once the search completed.
func (s *State) Path() (Path, bool) {
	if s.path == nil {
		return Path{}, false
	}
	return *s.path, true
}

// Backpointer returns the recorded predecessor of c, if any.
func (s *State) Backpointer(c grid.Coord) (Backpointer, bool) {
	bp, ok := s.cameFrom[c]
	return bp, ok
}

// Record sets cameFrom[c] = {from, cost}.
func (s *State) Record(c, from grid.Coord, cost int) {
	s.cameFrom[c] = Backpointer{From: from, Cost: cost}
}

// CameFrom returns a copy of the backpointer map.
func (s *State) CameFrom() map[grid.Coord]Backpointer {
	out := make(map[grid.Coord]Backpointer, len(s.cameFrom))
	for k, v := range s.cameFrom {
		out[k] = v
	}
	return out
}

// MarkVisited wraps the cell at c as Visited and counts it.
// It is a no-op for the start cell and for cells that already carry a mark.
func (s *State) MarkVisited(c grid.Coord) {
	if c == s.start {
		return
	}
	cell := s.grid.CellAt(c)
	if cell.Marked() {
		return
	}
	cell.Mark = grid.Visited
	s.grid.Set(c, cell)
	s.visited++
}

// Complete sets the completion flag and builds the path. If the path cannot
// be built the flag is cleared again and the grid is left untouched.
func (s *State) Complete() (Path, error) {
	s.completed = true
	p, err := s.BuildPath()
	if err != nil {
		s.completed = false
		return Path{}, err
	}

	return p, nil
}

// BuildPath walks backward from end via cameFrom until it reaches start,
// converting every intermediate cell to OnPath. Start and End keep their
// kind. The result is cached and returned by Path.
//
// Returns ErrNotCompleted before completion and ErrBrokenPath when a link is
// missing or the chain is longer than the grid has cells.
// Complexity: O(L) for a path of L cells.
func (s *State) BuildPath() (Path, error) {
	if !s.completed {
		return Path{}, ErrNotCompleted
	}
	last, ok := s.cameFrom[s.end]
	if !ok {
		return Path{}, fmt.Errorf("%w: no backpointer for end %v", ErrBrokenPath, s.end)
	}

	limit := s.grid.Width() * s.grid.Height()
	cells := []grid.Coord{s.end}
	for cur := s.end; cur != s.start; {
		bp, ok := s.cameFrom[cur]
		if !ok {
			return Path{}, fmt.Errorf("%w: no backpointer for %v", ErrBrokenPath, cur)
		}
		if len(cells) > limit {
			return Path{}, fmt.Errorf("%w: cycle through %v", ErrBrokenPath, cur)
		}
		cur = bp.From
		cells = append(cells, cur)
	}

	// Relabel only once the whole chain is known to be sound.
	for _, c := range cells[1 : len(cells)-1] {
		cell := s.grid.CellAt(c).Original()
		cell.Mark = grid.OnPath
		s.grid.Set(c, cell)
	}

	// reverse to get start → end
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	p := Path{
		Start:   s.start,
		End:     s.end,
		Visited: s.visited,
		Length:  last.Cost,
		Cells:   cells,
	}
	s.path = &p

	return p, nil
}
