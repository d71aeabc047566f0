// Package search provides tunable options and shared result types for the
// stepping path finders.
package search

import (
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Backpointer records the predecessor a cell was reached from and the
// accumulated cost at which it was reached.
type Backpointer struct {
	From grid.Coord
	Cost int
}

// Path summarizes a completed search.
//   - Start, End: the endpoints.
//   - Visited: how many cells were expanded (Start excluded).
//   - Length: accumulated cost recorded for End.
//   - Cells: coordinates from Start to End inclusive.
type Path struct {
	Start   grid.Coord
	End     grid.Coord
	Visited int
	Length  int
	Cells   []grid.Coord
}

// Hops returns the number of moves along the path.
func (p Path) Hops() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells) - 1
}

// String renders a one-line summary, e.g.
// "path (0,0) -> (2,2): length=4 hops=4 visited=6".
func (p Path) String() string {
	return fmt.Sprintf("path %v -> %v: length=%d hops=%d visited=%d",
		p.Start, p.End, p.Length, p.Hops(), p.Visited)
}

// Status is the position of a path finder in the shared state machine.
type Status int

const (
	// StatusIdle is the state right after construction or Reset.
	StatusIdle Status = iota
	// StatusStepping means work remains and the destination is not reached.
	StatusStepping
	// StatusCompleted means the destination was reached and the path is built.
	StatusCompleted
	// StatusExhausted means the frontier emptied first: no path exists.
	StatusExhausted
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusStepping:
		return "stepping"
	case StatusCompleted:
		return "completed"
	case StatusExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether further steps are no-ops.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusExhausted
}

// Option configures a path finder via functional arguments.
type Option func(*Options)

// Options holds the observability hooks of a path finder.
type Options struct {
	// OnCreate is called once the finder's state is built, by New and ResetWith.
	OnCreate func(name string, start, end grid.Coord)

	// OnExpand is called for every node a Step expands, with its cost.
	OnExpand func(c grid.Coord, cost int)

	// OnComplete is called once, when the path has been built.
	OnComplete func(p Path)

	// OnExhausted is called once, when the frontier empties without a path.
	OnExhausted func(visited int)
}

// DefaultOptions returns Options whose hooks are all no-ops.
func DefaultOptions() Options {
	return Options{
		OnCreate:    func(string, grid.Coord, grid.Coord) {},
		OnExpand:    func(grid.Coord, int) {},
		OnComplete:  func(Path) {},
		OnExhausted: func(int) {},
	}
}

// BuildOptions applies opts in order over DefaultOptions.
func BuildOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOnCreate registers a callback run after construction.
func WithOnCreate(fn func(name string, start, end grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCreate = fn
		}
	}
}

// WithOnExpand registers a callback run for every expanded node.
func WithOnExpand(fn func(c grid.Coord, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnComplete registers a callback run when the path is built.
func WithOnComplete(fn func(p Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}

// WithOnExhausted registers a callback run when no path exists.
func WithOnExhausted(fn func(visited int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExhausted = fn
		}
	}
}
