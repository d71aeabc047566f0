package heuristic

import (
	"container/heap"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Heuristic is a stepping greedy best-first path finder.
// It is not safe for concurrent use.
type Heuristic struct {
	state     *search.State
	opts      search.Options
	pq        nodePQ
	seq       uint64
	steps     int
	exhausted bool
}

var _ search.PathFinder = (*Heuristic)(nil)

// New builds the search state over g (taking ownership of it) and seeds the
// heap with the start coordinate.
// Returns search.ErrNilGrid, search.ErrNoStart, search.ErrNoEnd or
// search.ErrDuplicateEndpoint.
func New(g *grid.Grid, opts ...search.Option) (*Heuristic, error) {
	h := &Heuristic{opts: search.BuildOptions(opts...)}
	if err := h.ResetWith(g); err != nil {
		return nil, err
	}

	return h, nil
}

// Name returns "heuristic".
func (h *Heuristic) Name() string { return Name }

// ResetWith discards the current state and heap and rebuilds both over g.
func (h *Heuristic) ResetWith(g *grid.Grid) error {
	state, err := search.NewState(g)
	if err != nil {
		return err
	}
	h.state = state
	h.seed()
	h.opts.OnCreate(Name, state.Start(), state.End())

	return nil
}

// Reset restores the grid and reseeds the heap from start.
func (h *Heuristic) Reset() {
	h.state.Reset()
	h.seed()
}

func (h *Heuristic) seed() {
	h.pq = make(nodePQ, 0, h.state.Grid().Width()*h.state.Grid().Height())
	h.seq = 0
	heap.Init(&h.pq)
	h.push(h.state.Start(), 0)
	h.steps = 0
	h.exhausted = false
}

func (h *Heuristic) push(c grid.Coord, cost int) {
	heap.Push(&h.pq, &nodeItem{
		coord:    c,
		estimate: Estimate(c, h.state.End()),
		cost:     cost,
		seq:      h.seq,
	})
	h.seq++
}

// Step pops entries until one is not stale. Popping End completes the
// search; any other cell is marked Visited and its unmarked Free or End
// neighbors are relaxed at cost+1.
func (h *Heuristic) Step() (bool, error) {
	if h.state.Completed() || h.exhausted {
		return false, nil
	}

	for h.pq.Len() > 0 {
		item := heap.Pop(&h.pq).(*nodeItem)
		if bp, ok := h.state.Backpointer(item.coord); ok && item.cost > bp.Cost {
			continue
		}
		h.steps++

		if item.coord == h.state.End() {
			p, err := h.state.Complete()
			if err != nil {
				return false, err
			}
			h.opts.OnComplete(p)
			return true, nil
		}

		h.state.MarkVisited(item.coord)
		h.opts.OnExpand(item.coord, item.cost)
		next := item.cost + 1
		for _, nb := range h.state.Grid().Neighbors(item.coord) {
			if !nb.Cell.Is(grid.Free) && !nb.Cell.Is(grid.End) {
				continue
			}
			if bp, ok := h.state.Backpointer(nb.Coord); ok && next >= bp.Cost {
				continue
			}
			h.state.Record(nb.Coord, item.coord, next)
			h.push(nb.Coord, next)
		}
		if h.pq.Len() == 0 {
			h.exhaust()
		}

		return false, nil
	}
	h.exhaust()

	return false, nil
}

func (h *Heuristic) exhaust() {
	if h.exhausted {
		return
	}
	h.exhausted = true
	h.opts.OnExhausted(h.state.Visited())
}

// Grid exposes the owned grid read-only.
func (h *Heuristic) Grid() grid.View { return h.state.Grid() }

// CellAt returns the live cell at c.
func (h *Heuristic) CellAt(c grid.Coord) grid.Cell { return h.state.Grid().CellAt(c) }

// Completed reports whether the end cell was reached.
func (h *Heuristic) Completed() bool { return h.state.Completed() }

// Status reports the state-machine position.
func (h *Heuristic) Status() search.Status {
	return search.StatusOf(h.steps, h.state.Completed(), h.exhausted)
}

// Path returns the reconstructed path once completed.
func (h *Heuristic) Path() (search.Path, bool) { return h.state.Path() }

// Visited returns how many cells were expanded, start excluded.
func (h *Heuristic) Visited() int { return h.state.Visited() }

// Frontier returns the number of heap entries, stale ones included.
func (h *Heuristic) Frontier() int { return h.pq.Len() }
