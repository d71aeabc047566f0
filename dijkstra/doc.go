// Package dijkstra provides a stepping implementation of Dijkstra's
// shortest-path algorithm over a grid.Grid whose obstacles are weighted
// rather than impassable.
//
// Overview:
//
//   - The frontier is a min-heap keyed by accumulated cost. Ties are broken by
//     push order so that runs are reproducible.
//   - Entering a Free or End cell costs 1; entering an Obstacle of weight w
//     costs (w+1)*K with K = 6. Weights must lie in [0, grid.MaxWeight].
//   - One Step expands exactly one node. Stale heap entries (cost worse than
//     the recorded backpointer) are discarded within the same call.
//   - The search completes when End is popped, not when it is first relaxed,
//     so the reported cost is optimal.
//
// Lazy decrease-key:
//
//	A neighbor is relaxed only if the new cost strictly improves the cost
//	recorded in its backpointer (or none is recorded). The improved entry is
//	pushed; the outdated one stays in the heap and is skipped when popped.
//
// Performance and complexity (N = width×height):
//
//   - Step:  O(log N) amortized
//   - Run:   O(N log N)
//   - Space: O(N) for backpointers, O(4N) worst-case heap entries.
//
// Error handling (sentinel errors):
//
//   - search.ErrNilGrid, search.ErrNoStart, search.ErrNoEnd from New/ResetWith.
//   - ErrInvalidWeight from Step, when a neighbor carries a weight outside
//     [0, grid.MaxWeight]. The step is aborted before it marks or records
//     anything, so repeated calls keep failing the same way.
//
// Exhaustion (End unreachable) is not an error: Status settles on
// search.StatusExhausted and further steps are no-ops.
package dijkstra
