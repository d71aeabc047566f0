package heuristic

import "github.com/katalvlaran/gridwalk/grid"

// Name identifies the algorithm in logs and snapshots.
const Name = "heuristic"

// Estimate is the Manhattan distance from c to end.
func Estimate(c, end grid.Coord) int {
	return c.Manhattan(end)
}

// nodeItem is a frontier entry ordered by (estimate, cost, seq).
type nodeItem struct {
	coord    grid.Coord
	estimate int
	cost     int
	seq      uint64
}

// nodePQ is a min-heap of *nodeItem. Like the Dijkstra frontier it uses lazy
// deletion: superseded entries stay until popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.estimate != b.estimate {
		return a.estimate < b.estimate
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.seq < b.seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
