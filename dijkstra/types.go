package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

// Name identifies the algorithm in logs and snapshots.
const Name = "dijkstra"

// K scales obstacle weights: entering an Obstacle of weight w costs (w+1)*K.
const K = 6

// ErrInvalidWeight indicates an obstacle weight outside [0, grid.MaxWeight]
// was met while computing a step cost.
var ErrInvalidWeight = errors.New("dijkstra: obstacle weight out of range")

// StepCost returns the cost of entering cell c:
//   - Free, End: 1
//   - Obstacle(w): (w+1)*K
//
// Returns ErrInvalidWeight for an obstacle weight outside [0, grid.MaxWeight].
func StepCost(c grid.Cell) (int, error) {
	if c.Kind != grid.Obstacle {
		return 1, nil
	}
	if c.Weight < 0 || c.Weight > grid.MaxWeight {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeight, c.Weight)
	}

	return (c.Weight + 1) * K, nil
}

// nodeItem is a frontier entry. seq records push order and breaks cost ties.
type nodeItem struct {
	coord grid.Coord
	cost  int
	seq   uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (cost, seq).
// Stale entries are not removed on relaxation; Step discards them when
// popped (lazy decrease-key).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by cost, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
