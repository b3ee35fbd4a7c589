// File: lifecycle.go
// Role: Create and Delete, the two whole-component operations of §4.9.
package componentops

import "github.com/chainmesh/chainmesh/core"

// Create installs a new disconnected linear chain of the given length as its
// own component and returns its id. A thin wrapper over
// Graph.AddSingleChainComponent, kept here so callers reach component
// lifecycle operations through one package.
func Create(g *core.Graph, length int) core.ComponentID {
	g.Rec().ObserveTransform("componentops.Create")

	return g.AddSingleChainComponent(length)
}

// Delete tears down the component with the given id: every chain is peeled
// off one at a time, its two end-slots are disconnected from whatever
// neighborhoods still reference them, its edges are popped one by one (each
// pop relocates the graph's highest-numbered edge id into the vacated slot,
// keeping edge ids dense), and the emptied chain is itself popped, renaming
// the graph's last chain into the vacated chain id when it wasn't already
// last. Once every chain is gone, the component itself is popped the same
// way: the graph's last component is renamed into id, unless id was already
// last.
func Delete(g *core.Graph, id core.ComponentID) error {
	g.Rec().ObserveTransform("componentops.Delete")

	comp, ok := g.ComponentByID(id)
	if !ok {
		return core.ErrComponentNotFound
	}

	// comp.ChainIDs is re-read on every pass: popping a chain may rename the
	// graph's last chain, which can itself belong to comp, into the vacated id.
	for len(comp.ChainIDs) > 0 {
		chainID := comp.ChainIDs[0]
		comp.Remove(chainID)
		if err := deleteChain(g, chainID); err != nil {
			return err
		}
	}

	last := g.LastComponentID()
	if id != last {
		g.RenameComponentInto(last, id)
	}
	g.PopLastComponent()

	g.Update()

	return nil
}

// deleteChain disconnects and empties the chain at chainID, then pops it,
// renaming the graph's last chain into chainID's vacated slot if needed.
func deleteChain(g *core.Graph, chainID core.ChainID) error {
	ch, ok := g.ChainByID(chainID)
	if !ok {
		return core.ErrChainNotFound
	}

	for _, end := range []core.End{core.A, core.B} {
		g.RemoveSlotFromNeigs(core.EndSlot(chainID, end))
		ch.Ngs(end).Clear()
	}

	for ch.Length() > 0 {
		removed, err := ch.RemoveEdge(ch.Length() - 1)
		if err != nil {
			return err
		}
		compactEdgeID(g, removed.Ind)
	}

	last := g.LastChainID()
	if chainID != last {
		g.RenameChain(last, chainID)
	}
	g.PopLastChain()

	return nil
}

// compactEdgeID keeps graph-wide edge ids dense after popping the edge that
// held removedInd: if some other live edge currently holds the
// highest-numbered id, that edge is renumbered into removedInd's now-vacant
// slot. Graph.GLM/GLA are rebuilt wholesale by Graph.Update() once Delete
// finishes, so this walks the live chains directly rather than trusting
// books that may already be stale from an earlier pop in the same Delete
// call.
func compactEdgeID(g *core.Graph, removedInd core.EdgeID) {
	highest := core.EdgeID(-1)
	var highestEdge *core.Edge
	for _, ch := range g.Chains {
		for i := range ch.Edges {
			if ch.Edges[i].Ind > highest {
				highest = ch.Edges[i].Ind
				highestEdge = &ch.Edges[i]
			}
		}
	}
	if highestEdge == nil || highest <= removedInd {
		return
	}
	highestEdge.Ind = removedInd
}
