// File: to_one_one.go
// Role: Split to (1,1) — the dual of ToCycle/Parallel/Antiparallel's
// degenerate case: either open a disconnected cycle back into a line, or cut
// a linear chain in two at a bulk position (§4.7).
package vertexsplit

import "github.com/chainmesh/chainmesh/core"

// ToOneOne splits the vertex addressed by s into two free (degree-1) ends.
//
//   - s on a disconnected cycle, addressed as an end: both neighborhoods are
//     cleared and the chain becomes an ordinary open chain of the same length.
//   - s on a disconnected cycle, addressed as a true bulk position: the edge
//     storage is rotated so the split position becomes the new ends, then
//     both neighborhoods are cleared — still one chain, now open.
//   - s on any other chain, at a true bulk position: the chain is cut into
//     two; the right-hand half becomes a new chain inheriting the original's
//     end-B neighborhood. Whether this disconnects the component is decided
//     by reachability (§9 Open Question 1: preserved as stated — no new
//     component is created if the two halves remain reachable through some
//     other path).
//
// Returns the two newly-freed end-slots (left, right), the id of the
// (possibly new) component holding the right-hand half, and whether a new
// component was actually created.
func ToOneOne(g *core.Graph, s core.Slot) (core.Slot, core.Slot, core.ComponentID, bool, error) {
	g.Rec().ObserveTransform("vertexsplit.ToOneOne")
	ch := g.ChainAt(s)

	if ch.IsDisconnectedCycle() {
		if s.IsEnd() {
			ch.Ngs(core.A).Clear()
			ch.Ngs(core.B).Clear()
			g.Update()

			return core.EndSlot(ch.ID, core.A), core.EndSlot(ch.ID, core.B), ch.ComponentID, false, nil
		}

		pos := s.Pos
		rotated := make([]core.Edge, 0, len(ch.Edges))
		rotated = append(rotated, ch.Edges[pos:]...)
		rotated = append(rotated, ch.Edges[:pos]...)
		ch.Edges = rotated
		ch.Renumber()
		ch.Ngs(core.A).Clear()
		ch.Ngs(core.B).Clear()
		g.Update()

		return core.EndSlot(ch.ID, core.A), core.EndSlot(ch.ID, core.B), ch.ComponentID, false, nil
	}

	if !s.Bulk {
		return core.Slot{}, core.Slot{}, 0, false, ErrNotBulk
	}

	pos := s.Pos
	rightEdges := make([]core.Edge, len(ch.Edges)-pos)
	copy(rightEdges, ch.Edges[pos:])
	ch.Edges = ch.Edges[:pos]
	ch.Renumber()

	newChain := &core.Chain{Edges: rightEdges}
	newID := g.AppendChain(newChain)
	newChain.Renumber()

	g.CopyNeigs(core.EndSlot(ch.ID, core.B), core.EndSlot(newID, core.B))

	comp, _ := g.ComponentByID(ch.ComponentID)
	newChain.ComponentID = ch.ComponentID
	comp.Append(newID)
	comp.RebuildIndices(g)

	result := g.SplitComponent(comp.ID, core.EndSlot(newID, core.A))
	split := result != comp.ID
	g.Update()

	return core.EndSlot(ch.ID, core.B), core.EndSlot(newID, core.A), result, split, nil
}
