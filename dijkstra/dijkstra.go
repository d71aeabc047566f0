package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// Dijkstra is a stepping weighted path finder. Obstacles are traversable at
// a weight-dependent cost. It is not safe for concurrent use.
type Dijkstra struct {
	state     *search.State
	opts      search.Options
	pq        nodePQ
	seq       uint64
	steps     int
	exhausted bool
}

var _ search.PathFinder = (*Dijkstra)(nil)

// relaxation is a pending cameFrom update computed before anything mutates.
type relaxation struct {
	coord grid.Coord
	cost  int
}

// New builds the search state over g (taking ownership of it) and seeds the
// heap with the start coordinate at cost 0.
// Returns search.ErrNilGrid, search.ErrNoStart, search.ErrNoEnd or
// search.ErrDuplicateEndpoint.
func New(g *grid.Grid, opts ...search.Option) (*Dijkstra, error) {
	d := &Dijkstra{opts: search.BuildOptions(opts...)}
	if err := d.ResetWith(g); err != nil {
		return nil, err
	}

	return d, nil
}

// Name returns "dijkstra".
func (d *Dijkstra) Name() string { return Name }

// ResetWith discards the current state and heap and rebuilds both over g.
func (d *Dijkstra) ResetWith(g *grid.Grid) error {
	state, err := search.NewState(g)
	if err != nil {
		return err
	}
	d.state = state
	d.seed()
	d.opts.OnCreate(Name, state.Start(), state.End())

	return nil
}

// Reset restores the grid and reseeds the heap from start.
func (d *Dijkstra) Reset() {
	d.state.Reset()
	d.seed()
}

func (d *Dijkstra) seed() {
	d.pq = make(nodePQ, 0, d.state.Grid().Width()*d.state.Grid().Height())
	d.seq = 0
	heap.Init(&d.pq)
	d.push(d.state.Start(), 0)
	d.steps = 0
	d.exhausted = false
}

func (d *Dijkstra) push(c grid.Coord, cost int) {
	heap.Push(&d.pq, &nodeItem{coord: c, cost: cost, seq: d.seq})
	d.seq++
}

// Step pops entries until one is not stale and processes it:
//   - End: the search completes and the path is built.
//   - otherwise: the cell is marked Visited and every unmarked neighbor whose
//     cost strictly improves on its recorded backpointer is relaxed and pushed.
//
// Returns ErrInvalidWeight if a neighbor's obstacle weight is out of range;
// the popped entry is put back and nothing else changes.
func (d *Dijkstra) Step() (bool, error) {
	if d.state.Completed() || d.exhausted {
		return false, nil
	}

	for d.pq.Len() > 0 {
		item := heap.Pop(&d.pq).(*nodeItem)
		if bp, ok := d.state.Backpointer(item.coord); ok && item.cost > bp.Cost {
			continue // stale
		}

		if item.coord == d.state.End() {
			d.steps++
			p, err := d.state.Complete()
			if err != nil {
				return false, err
			}
			d.opts.OnComplete(p)
			return true, nil
		}

		relax, err := d.relaxations(item)
		if err != nil {
			heap.Push(&d.pq, item)
			return false, err
		}

		d.steps++
		d.state.MarkVisited(item.coord)
		d.opts.OnExpand(item.coord, item.cost)
		for _, r := range relax {
			d.state.Record(r.coord, item.coord, r.cost)
			d.push(r.coord, r.cost)
		}
		if d.pq.Len() == 0 {
			d.exhaust()
		}

		return false, nil
	}
	d.exhaust()

	return false, nil
}

// relaxations computes the neighbor updates implied by expanding item.
func (d *Dijkstra) relaxations(item *nodeItem) ([]relaxation, error) {
	var out []relaxation
	for _, nb := range d.state.Grid().Neighbors(item.coord) {
		if nb.Cell.Marked() || nb.Cell.Kind == grid.Start {
			continue
		}
		step, err := StepCost(nb.Cell)
		if err != nil {
			return nil, err
		}
		cost := item.cost + step
		if bp, ok := d.state.Backpointer(nb.Coord); ok && cost >= bp.Cost {
			continue
		}
		out = append(out, relaxation{coord: nb.Coord, cost: cost})
	}

	return out, nil
}

func (d *Dijkstra) exhaust() {
	if d.exhausted {
		return
	}
	d.exhausted = true
	d.opts.OnExhausted(d.state.Visited())
}

// Grid exposes the owned grid read-only.
func (d *Dijkstra) Grid() grid.View { return d.state.Grid() }

// CellAt returns the live cell at c.
func (d *Dijkstra) CellAt(c grid.Coord) grid.Cell { return d.state.Grid().CellAt(c) }

// Completed reports whether the end cell was reached.
func (d *Dijkstra) Completed() bool { return d.state.Completed() }

// Status reports the state-machine position.
func (d *Dijkstra) Status() search.Status {
	return search.StatusOf(d.steps, d.state.Completed(), d.exhausted)
}

// Path returns the reconstructed path once completed.
func (d *Dijkstra) Path() (search.Path, bool) { return d.state.Path() }

// Visited returns how many cells were expanded, start excluded.
func (d *Dijkstra) Visited() int { return d.state.Visited() }

// Frontier returns the number of heap entries, stale ones included.
func (d *Dijkstra) Frontier() int { return d.pq.Len() }
