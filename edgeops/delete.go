// File: delete.go
// Role: DeleteWithHostChain and DeletePreservingHostChain (§4.8).
package edgeops

import (
	"github.com/chainmesh/chainmesh/componentops"
	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/vertexsplit"
)

// DeleteWithHostChain deletes the edge hosted by a length-1 chain whose
// connected end has degree 3 or 4, by performing the matching (1, D-1) split
// at that end (which is (1,0)-aware via vertexsplit's cycle detection) and
// then deleting the now-isolated singleton component left holding only the
// doomed edge.
func DeleteWithHostChain(g *core.Graph, end core.Slot) ([]core.ComponentID, error) {
	g.Rec().ObserveTransform("edgeops.DeleteWithHostChain")

	ch := g.ChainAt(end)
	if ch.Length() != 1 {
		return nil, core.ErrChainTooShort
	}
	degree := ch.Degree(end.End)

	var touched core.ComponentID
	var err error
	switch degree {
	case 3:
		touched, _, err = vertexsplit.ToOneDMinus1(g, end)
	case 4:
		touched, _, err = vertexsplit.ToOneThree(g, end)
	default:
		return nil, ErrUnsupportedDegree
	}
	if err != nil {
		return nil, err
	}

	if comp, ok := g.ComponentByID(ch.ComponentID); ok && len(comp.ChainIDs) == 1 && comp.ChainIDs[0] == ch.ID {
		if err := componentops.Delete(g, comp.ID); err != nil {
			return nil, err
		}
	}
	g.Update()

	return []core.ComponentID{touched}, nil
}

// DeletePreservingHostChain removes the edge addressed by slot from a
// shrinkable chain without removing the chain itself, compacting the
// graph-wide dense edge id by moving the highest-numbered edge into the
// vacated id (§4.8, §9 swap-compaction discipline).
func DeletePreservingHostChain(g *core.Graph, slot core.Slot) (core.EdgeID, error) {
	g.Rec().ObserveTransform("edgeops.DeletePreservingHostChain")

	ch := g.ChainAt(slot)
	if !ch.IsShrinkable() {
		return 0, core.ErrChainTooShort
	}

	pos := slot.Pos
	if slot.IsEnd() {
		if slot.End == core.A {
			pos = 0
		} else {
			pos = ch.Length() - 1
		}
	}

	removed, err := ch.RemoveEdge(pos)
	if err != nil {
		return 0, err
	}

	// GLM/GLA still describe the pre-removal layout, which is stale for ch
	// itself (its edges past pos have shifted down by one), so ch is searched
	// directly for the highest id; the books are used only when that edge
	// lives in another chain.
	lastInd := core.EdgeID(g.EdgeNum - 1)
	if removed.Ind != lastInd {
		inCh := false
		for i := range ch.Edges {
			if ch.Edges[i].Ind == lastInd {
				ch.Edges[i].Ind = removed.Ind
				inCh = true
			}
		}
		if lastEdge, ok := g.EdgeAt(lastInd); ok && !inCh {
			lastChain := g.Chains[lastEdge.W]
			lastChain.Edges[lastEdge.Indw].Ind = removed.Ind
		}
	}
	g.Update()

	return removed.Ind, nil
}
