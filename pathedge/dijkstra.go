// File: dijkstra.go
// Role: Dijkstra over a component's edge adjacency — the path engine that
// feeds pulling (§4.10): the path it returns starts at the driver edge and
// ends at the source edge, as pulling requires.
package pathedge

import (
	"container/heap"
	"math"

	"github.com/chainmesh/chainmesh/core"
)

// ShortestPath computes the shortest (by Edge.Weight, treated as a positive
// cost) path of edges from start to target within component compID, using
// the component's lazily-built edge adjacency list. The returned slice
// begins with start and ends with target, inclusive.
//
// Complexity: O((Ec + Ac) log Ec).
func ShortestPath(g *core.Graph, compID core.ComponentID, start, target core.EdgeID) ([]core.EdgeID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	comp, ok := g.ComponentByID(compID)
	if !ok {
		return nil, ErrBadComponent
	}

	adj := comp.AdjacencyListEdges(g)

	dist := map[core.EdgeID]float64{start: 0}
	prev := map[core.EdgeID]core.EdgeID{}
	visited := map[core.EdgeID]bool{}

	pq := &edgePQ{{edge: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(heapItem)
		if visited[cur.edge] {
			continue
		}
		visited[cur.edge] = true
		if cur.edge == target {
			break
		}

		for _, nb := range adj[cur.edge] {
			w, ok := g.EdgeAt(nb)
			weight := 1.0
			if ok && w.Weight > 0 {
				weight = w.Weight
			}
			nd := cur.dist + weight
			if old, seen := dist[nb]; !seen || nd < old {
				dist[nb] = nd
				prev[nb] = cur.edge
				heap.Push(pq, heapItem{edge: nb, dist: nd})
			}
		}
	}

	if _, ok := dist[target]; !ok || math.IsInf(dist[target], 1) {
		if start != target {
			if _, seen := dist[target]; !seen {
				return nil, ErrUnreachable
			}
		}
	}
	if start != target {
		if !visited[target] {
			return nil, ErrUnreachable
		}
	}

	// Reconstruct path start..target by walking prev backward from target.
	path := []core.EdgeID{target}
	cur := target
	for cur != start {
		p, ok := prev[cur]
		if !ok {
			return nil, ErrUnreachable
		}
		path = append(path, p)
		cur = p
	}
	// Reverse into start->target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
