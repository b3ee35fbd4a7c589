// Package pathedge implements the shortest-path-over-edges engine used by
// pulling (§4.10): Dijkstra's algorithm over a component's per-edge adjacency,
// where adjacency connects consecutive edges inside a chain and the boundary
// edges of chain ends listed in each other's neighborhood.
//
// Complexity: O((Ec + Ac) log Ec) where Ec is the component's edge count and
// Ac its adjacency list size, using a binary-heap priority queue.
package pathedge

import (
	"container/heap"
	"errors"

	"github.com/chainmesh/chainmesh/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("pathedge: graph is nil")

	// ErrBadComponent indicates the component id is out of range.
	ErrBadComponent = errors.New("pathedge: component id out of range")

	// ErrUnreachable indicates no path exists between start and target.
	ErrUnreachable = errors.New("pathedge: target unreachable from start")
)

// heapItem pairs an edge id with its tentative distance from the start edge.
type heapItem struct {
	edge core.EdgeID
	dist float64
}

// edgePQ is a binary min-heap over heapItem.dist.
type edgePQ []heapItem

func (pq edgePQ) Len() int            { return len(pq) }
func (pq edgePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(heapItem)) }
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

var _ heap.Interface = (*edgePQ)(nil)
