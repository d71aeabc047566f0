// Package heuristic provides a stepping greedy best-first search over a
// grid.Grid, guided by the Manhattan distance to the end cell.
//
// The frontier is a min-heap keyed by (estimate, cost), with push order as
// the final tie-break. Only Free and End cells are traversable and every hop
// costs 1. Stepping mirrors package dijkstra: stale entries are skipped, one
// node is expanded per Step, a neighbor is relaxed only on strict
// improvement, and the search completes when End is popped.
//
// Ordering by estimate alone makes the search greedy: it usually expands far
// fewer cells than BFS, but on grids with obstacles the path it returns is
// not guaranteed to be shortest. On an obstacle-free grid it returns a path
// of exactly Manhattan(start, end) hops.
package heuristic
