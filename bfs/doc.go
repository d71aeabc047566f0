// Package bfs provides a stepping breadth-first search over a grid.Grid,
// expanding one frontier entry per Step so a renderer can watch the search
// grow layer by layer.
//
// What
//
//   - The frontier is a FIFO queue of (distance, coordinate) entries seeded
//     with the start cell at distance 0.
//   - One Step dequeues exactly one entry, marks it Visited (the start cell is
//     never marked) and inspects its orthogonal neighbors:
//   - End: the backpointer is recorded and the search completes.
//   - Free without a backpointer: recorded at distance+1 and enqueued.
//   - Obstacles are impassable; BFS has no notion of weight.
//   - On completion the path is rebuilt and its intermediate cells relabeled
//     OnPath.
//
// Why
//
//   - On an unweighted grid the layer-by-layer expansion yields a shortest
//     hop-count path.
//
// Determinism
//
//	grid.Neighbors returns neighbors in a fixed order (right, left, down, up),
//	and BFS enqueues them in that order, so the expansion sequence and the
//	chosen path are fully reproducible.
//
// Complexity (N = width×height)
//
//   - Step:  O(1)
//   - Run:   O(N) steps in total
//   - Memory: O(N) for queue and backpointers
//
// Usage
//
//	f, err := bfs.New(g, search.WithOnComplete(func(p search.Path) { ... }))
//	if err != nil {
//		// search.ErrNoStart, search.ErrNoEnd or search.ErrNilGrid
//	}
//	for !f.Status().Terminal() {
//		if _, err := f.Step(); err != nil {
//			return err
//		}
//	}
package bfs
