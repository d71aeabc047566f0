package bfs

import (
	"github.com/katalvlaran/gridwalk/grid"
	"github.com/katalvlaran/gridwalk/search"
)

// CameFrom returns a copy of the finder's backpointer map.
func CameFrom(b *BFS) map[grid.Coord]search.Backpointer { return b.state.CameFrom() }
