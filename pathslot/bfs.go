// File: bfs.go
// Role: Breadth-first search over end-slots, for routes expressed as a
// sequence of chain ends rather than edges. Pulling routes over edges through
// pathedge instead, and CutComponentAt/SplitComponent use core's own
// reachability flood fill.
package pathslot

import "github.com/chainmesh/chainmesh/core"

// neighbors returns every end-slot directly reachable from s in one hop: the
// opposite end of s's own chain, and every slot listed in s's neighborhood.
func neighbors(g *core.Graph, s core.Slot) []core.Slot {
	ch := g.ChainAt(s)
	out := make([]core.Slot, 0, core.MaxDegree)
	if opp, ok := s.Opp(); ok {
		out = append(out, opp)
	}
	if s.IsEnd() {
		out = append(out, ch.Ngs(s.End).Slots()...)
	}

	return out
}

// BFS explores every end-slot in component compID reachable from start,
// returning visitation order, parent links and depths. Complexity: O(V+E)
// over the component's chain-end meta-graph.
func BFS(g *core.Graph, compID core.ComponentID, start core.Slot) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	comp, ok := g.ComponentByID(compID)
	if !ok {
		return nil, ErrBadComponent
	}

	res := &Result{
		Parent: map[core.Slot]core.Slot{},
		Depth:  map[core.Slot]int{start: 0},
	}
	queue := []core.Slot{start}
	res.Order = append(res.Order, start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range neighbors(g, cur) {
			if !comp.Contains(nb.Chain) {
				continue
			}
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			res.Depth[nb] = res.Depth[cur] + 1
			res.Parent[nb] = cur
			res.Order = append(res.Order, nb)
			queue = append(queue, nb)
		}
	}

	return res, nil
}

// ShortestPath returns the sequence of end-slots from start to target,
// inclusive, found by BFS (so: fewest chain-end hops). ErrUnreachable if
// target was never visited.
func ShortestPath(g *core.Graph, compID core.ComponentID, start, target core.Slot) ([]core.Slot, error) {
	res, err := BFS(g, compID, start)
	if err != nil {
		return nil, err
	}
	if !res.Visited(target) {
		return nil, ErrUnreachable
	}

	path := []core.Slot{target}
	cur := target
	for cur != start {
		p, ok := res.Parent[cur]
		if !ok {
			return nil, ErrUnreachable
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
