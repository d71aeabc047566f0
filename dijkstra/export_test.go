package dijkstra

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// CameFrom returns a copy of the finder's backpointer map.
func CameFrom(d *Dijkstra) map[grid.Coord]search.Backpointer { return d.state.CameFrom() }
