// Package bfs defines the frontier entry type for the stepping
// breadth-first search.
package bfs

import "github.com/katalvlaran/gridwalk/grid"

// Name identifies the algorithm in logs and snapshots.
const Name = "bfs"

// queueItem pairs a coordinate with its distance (edge count) from start.
type queueItem struct {
	coord grid.Coord
	depth int
}
