package heuristic

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// CameFrom returns a copy of the finder's backpointer map.
func CameFrom(h *Heuristic) map[grid.Coord]search.Backpointer { return h.state.CameFrom() }
