package bfs

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// BFS is a stepping breadth-first path finder. It owns its search.State and
// queue exclusively and is not safe for concurrent use.
type BFS struct {
	state     *search.State
	opts      search.Options
	queue     []queueItem
	steps     int
	exhausted bool
}

var _ search.PathFinder = (*BFS)(nil)

// New builds the search state over g (taking ownership of it) and seeds the
// queue with the start coordinate at distance 0.
// Returns search.ErrNilGrid, search.ErrNoStart, search.ErrNoEnd or
// search.ErrDuplicateEndpoint.
func New(g *grid.Grid, opts ...search.Option) (*BFS, error) {
	b := &BFS{opts: search.BuildOptions(opts...)}
	if err := b.ResetWith(g); err != nil {
		return nil, err
	}

	return b, nil
}

// Name returns "bfs".
func (b *BFS) Name() string { return Name }

// ResetWith discards the current state and queue and rebuilds both over g.
func (b *BFS) ResetWith(g *grid.Grid) error {
	state, err := search.NewState(g)
	if err != nil {
		return err
	}
	b.state = state
	b.seed()
	b.opts.OnCreate(Name, state.Start(), state.End())

	return nil
}

// Reset restores the grid and reseeds the queue from start.
func (b *BFS) Reset() {
	b.state.Reset()
	b.seed()
}

func (b *BFS) seed() {
	n := b.state.Grid().Width() * b.state.Grid().Height()
	b.queue = make([]queueItem, 0, n)
	b.queue = append(b.queue, queueItem{coord: b.state.Start(), depth: 0})
	b.steps = 0
	b.exhausted = false
}

// Step dequeues one entry and expands it. It returns true on the call that
// discovers the end cell.
func (b *BFS) Step() (bool, error) {
	if b.state.Completed() || b.exhausted {
		return false, nil
	}
	if len(b.queue) == 0 {
		b.exhaust()
		return false, nil
	}
	b.steps++

	item := b.dequeue()
	b.state.MarkVisited(item.coord)
	b.opts.OnExpand(item.coord, item.depth)

	reached := false
	next := item.depth + 1
	for _, nb := range b.state.Grid().Neighbors(item.coord) {
		_, seen := b.state.Backpointer(nb.Coord)
		switch {
		case nb.Coord == b.state.End():
			if !seen {
				b.state.Record(nb.Coord, item.coord, next)
			}
			reached = true
		case nb.Cell.Is(grid.Free) && !seen:
			b.state.Record(nb.Coord, item.coord, next)
			b.queue = append(b.queue, queueItem{coord: nb.Coord, depth: next})
		}
	}

	if reached {
		p, err := b.state.Complete()
		if err != nil {
			return false, err
		}
		b.opts.OnComplete(p)
		return true, nil
	}
	if len(b.queue) == 0 {
		b.exhaust()
	}

	return false, nil
}

// dequeue pops the first item.
func (b *BFS) dequeue() queueItem {
	item := b.queue[0]
	b.queue = b.queue[1:]
	return item
}

func (b *BFS) exhaust() {
	if b.exhausted {
		return
	}
	b.exhausted = true
	b.opts.OnExhausted(b.state.Visited())
}

// Grid exposes the owned grid read-only.
func (b *BFS) Grid() grid.View { return b.state.Grid() }

// CellAt returns the live cell at c.
func (b *BFS) CellAt(c grid.Coord) grid.Cell { return b.state.Grid().CellAt(c) }

// Completed reports whether the end cell was reached.
func (b *BFS) Completed() bool { return b.state.Completed() }

// Status reports the state-machine position.
func (b *BFS) Status() search.Status {
	return search.StatusOf(b.steps, b.state.Completed(), b.exhausted)
}

// Path returns the reconstructed path once completed.
func (b *BFS) Path() (search.Path, bool) { return b.state.Path() }

// Visited returns how many cells were expanded, start excluded.
func (b *BFS) Visited() int { return b.state.Visited() }

// Frontier returns the number of queued entries.
func (b *BFS) Frontier() int { return len(b.queue) }
