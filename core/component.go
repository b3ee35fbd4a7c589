// File: component.go
// Role: Component — a maximal set of chains reachable through neighborhoods,
//       per §3/§4.4. Owns component-local indices and the end-degree
//       classification ("chis") described in §3.
// Ownership:
//   - Component stores only ChainIDs (integers); it borrows the actual Chain
//     values from Graph.Chains by reference, never owning or copying them
//     (§5, §9 arena-plus-index design note).
// AI-HINT (file):
//   - Classification buckets mirror the seven cases from §3 exactly:
//     11, 22 (disconnected cycle), 13, 14, 33, 44, 34. C11 and C22 hold one
//     chain each; neither Populate nor Include checks that a component has
//     at most one such chain — Include keeps the last one it sees.
package core

// Chis is the end-degree classification of a component's chains (§3).
// C11 and C22 are scalars (Undefined==-1 meaning "none"); the rest are
// vectors of chain ids, since a component may hold any number of them.
type Chis struct {
	C11 ChainID // the one (|ngs[A]|,|ngs[B]|)==(0,0) chain, if any
	C22 ChainID // the one disconnected-cycle chain, if any
	C13 []ChainID
	C14 []ChainID
	C33 []ChainID
	C44 []ChainID
	C34 []ChainID
}

// Component is a maximal set of chains connected through neighborhoods.
type Component struct {
	ID        ComponentID
	ChainIDs  []ChainID
	EdgeIDs   []EdgeID // dense, component-local order; EdgeIDs[indc] == global edge id
	Chis      Chis
	adjEdges  map[EdgeID][]EdgeID
	adjChains map[ChainID][]ChainID
}

// NewComponent allocates an empty Component with the given id.
func NewComponent(id ComponentID) *Component {
	return &Component{ID: id, Chis: Chis{C11: Undefined, C22: Undefined}}
}

// Contains reports whether chainID belongs to this component.
func (cp *Component) Contains(chainID ChainID) bool {
	for _, id := range cp.ChainIDs {
		if id == chainID {
			return true
		}
	}

	return false
}

// Append adds chainID to the component's chain set (caller ensures no dup).
func (cp *Component) Append(chainID ChainID) {
	cp.ChainIDs = append(cp.ChainIDs, chainID)
}

// AppendChains adds a batch of chain ids.
func (cp *Component) AppendChains(ids []ChainID) {
	cp.ChainIDs = append(cp.ChainIDs, ids...)
}

// Remove deletes chainID from the component's chain set via swap-with-last,
// matching the compaction pattern used throughout this package for dense ids.
func (cp *Component) Remove(chainID ChainID) bool {
	for i, id := range cp.ChainIDs {
		if id == chainID {
			last := len(cp.ChainIDs) - 1
			cp.ChainIDs[i] = cp.ChainIDs[last]
			cp.ChainIDs = cp.ChainIDs[:last]

			return true
		}
	}

	return false
}

// SetInd reassigns this component's own id (used when compacting Graph.Components).
func (cp *Component) SetInd(id ComponentID) { cp.ID = id }

// invalidateAdjacency drops any cached adjacency lists; the next call to
// AdjacencyListEdges/AdjacencyListChains will lazily rebuild them.
func (cp *Component) invalidateAdjacency() {
	cp.adjEdges = nil
	cp.adjChains = nil
}

// FindChains returns the ids of every chain in this component reachable from
// seed by following neighborhoods (including seed itself). Used by splits to
// discover which half of a component stays with which output chain.
func (cp *Component) FindChains(g *Graph, seed ChainID) []ChainID {
	visited := map[ChainID]bool{seed: true}
	stack := []ChainID{seed}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ch := g.Chains[id]
		for _, end := range []End{A, B} {
			for _, s := range ch.Ngs(end).Slots() {
				if !visited[s.Chain] {
					visited[s.Chain] = true
					stack = append(stack, s.Chain)
				}
			}
		}
	}
	out := make([]ChainID, 0, len(visited))
	for id := range visited {
		out = append(out, id)
	}

	return out
}

// ShiftLastEdge moves the boundary edge at from.End of chain from.Chain to
// become a boundary edge at to.End of chain to.Chain (§4.4). This is the
// atomic primitive used by pulling.
//
// The edge is inserted at the front of the target's storage when to.End==A,
// else at the back; it is removed from the front of the source when
// from.End==A, else from the back. Both chains are re-stamped and the
// component's dense indices are re-materialised.
func (cp *Component) ShiftLastEdge(g *Graph, from, to Slot) error {
	if from.Bulk || to.Bulk {
		return ErrPosOutOfRange
	}
	srcChain, ok := g.ChainByID(from.Chain)
	if !ok {
		return ErrChainNotFound
	}
	dstChain, ok := g.ChainByID(to.Chain)
	if !ok {
		return ErrChainNotFound
	}

	var pos int
	if from.End == A {
		pos = 0
	} else {
		pos = srcChain.Length() - 1
	}
	e, err := srcChain.RemoveEdge(pos)
	if err != nil {
		return err
	}

	if to.End == A {
		dstChain.PrependEdge(e)
	} else {
		dstChain.AppendEdge(e)
	}

	cp.RebuildIndices(g)

	return nil
}

// MoveTo transfers the chains in subset from cp into other, re-homing each
// moved chain's ComponentID and re-materializing both components' dense
// indices (§4.4 move_to). Unlike SplitComponent/splitOffChains, which always
// manufacture a fresh destination, MoveTo names any existing component as
// the target — callers that need to merge a split-off subset back into a
// specific sibling component use this directly instead of split-then-merge.
// Chain ids absent from cp are silently skipped.
func (cp *Component) MoveTo(g *Graph, other *Component, subset []ChainID) {
	for _, id := range subset {
		if !cp.Remove(id) {
			continue
		}
		other.Append(id)
		g.Chains[id].ComponentID = other.ID
	}
	cp.RebuildIndices(g)
	other.RebuildIndices(g)
}

// RebuildIndices recomputes component-local chain ids and edge ids (Indc)
// for every chain currently owned by this component, in ChainIDs order, and
// refreshes the dense EdgeIDs list. Called at the end of any structural
// change so external observers always see consistent indices (§5).
func (cp *Component) RebuildIndices(g *Graph) {
	var next EdgeID
	cp.EdgeIDs = cp.EdgeIDs[:0]
	for i, chainID := range cp.ChainIDs {
		ch := g.Chains[chainID]
		next = ch.SetComponent(cp.ID, ChainID(i), next)
		for _, e := range ch.Edges {
			cp.EdgeIDs = append(cp.EdgeIDs, e.Ind)
		}
	}
	cp.invalidateAdjacency()
	cp.Populate(g)
}

// AdjacencyListEdges lazily builds and returns a map from each edge's global
// id to the global ids of edges sharing a vertex with it, restricted to this
// component. Two edges are adjacent if they are consecutive within the same
// chain, or if they are the respective boundary edges of two chain ends
// listed in each other's neighborhood.
func (cp *Component) AdjacencyListEdges(g *Graph) map[EdgeID][]EdgeID {
	if cp.adjEdges != nil {
		return cp.adjEdges
	}
	adj := make(map[EdgeID][]EdgeID)
	link := func(a, b EdgeID) {
		adj[a] = append(adj[a], b)
	}
	for _, chainID := range cp.ChainIDs {
		ch := g.Chains[chainID]
		for i := 0; i+1 < len(ch.Edges); i++ {
			link(ch.Edges[i].Ind, ch.Edges[i+1].Ind)
			link(ch.Edges[i+1].Ind, ch.Edges[i].Ind)
		}
		if len(ch.Edges) == 0 {
			continue
		}
		for _, end := range []End{A, B} {
			boundary, ok := ch.EndEdge(end)
			if !ok {
				continue
			}
			for _, s := range ch.Ngs(end).Slots() {
				other := g.Chains[s.Chain]
				oe, ok := other.EndEdge(s.End)
				if ok {
					link(boundary.Ind, oe.Ind)
				}
			}
		}
	}
	cp.adjEdges = adj

	return adj
}

// AdjacencyListChains lazily builds and returns a map from each chain's id to
// the ids of chains directly connected to it through either end.
func (cp *Component) AdjacencyListChains(g *Graph) map[ChainID][]ChainID {
	if cp.adjChains != nil {
		return cp.adjChains
	}
	adj := make(map[ChainID][]ChainID)
	for _, chainID := range cp.ChainIDs {
		ch := g.Chains[chainID]
		for _, end := range []End{A, B} {
			for _, s := range ch.Ngs(end).Slots() {
				adj[chainID] = append(adj[chainID], s.Chain)
			}
		}
	}
	cp.adjChains = adj

	return adj
}

// bucketOf classifies a single chain into one of the seven §3 buckets,
// returning the bucket name and, where relevant, nothing else — callers
// update Chis directly since scalar buckets (11/22) need special handling.
func bucketOf(ch *Chain) string {
	if ch.IsDisconnectedCycle() {
		return "22"
	}
	dA, dB := ch.Degree(A), ch.Degree(B)
	if dA > dB {
		dA, dB = dB, dA
	}
	switch {
	case dA == 1 && dB == 1:
		return "11"
	case dA == 1 && dB == 3:
		return "13"
	case dA == 1 && dB == 4:
		return "14"
	case dA == 3 && dB == 3:
		return "33"
	case dA == 4 && dB == 4:
		return "44"
	case dA == 3 && dB == 4:
		return "34"
	default:
		return "" // e.g. degree-2 ends outside the disconnected-cycle case never occur (see core/chain.go)
	}
}

// Include incrementally adds chain chainID's classification into Chis.
func (cp *Component) Include(g *Graph, chainID ChainID) {
	ch := g.Chains[chainID]
	switch bucketOf(ch) {
	case "11":
		cp.Chis.C11 = chainID
	case "22":
		cp.Chis.C22 = chainID
	case "13":
		cp.Chis.C13 = append(cp.Chis.C13, chainID)
	case "14":
		cp.Chis.C14 = append(cp.Chis.C14, chainID)
	case "33":
		cp.Chis.C33 = append(cp.Chis.C33, chainID)
	case "44":
		cp.Chis.C44 = append(cp.Chis.C44, chainID)
	case "34":
		cp.Chis.C34 = append(cp.Chis.C34, chainID)
	}
}

// removeChainID deletes chainID from a []ChainID in place, swap-with-last.
func removeChainID(ids []ChainID, target ChainID) []ChainID {
	for i, id := range ids {
		if id == target {
			last := len(ids) - 1
			ids[i] = ids[last]

			return ids[:last]
		}
	}

	return ids
}

// RemoveFromChis incrementally drops chainID's classification from Chis.
func (cp *Component) RemoveFromChis(chainID ChainID) {
	if cp.Chis.C11 == chainID {
		cp.Chis.C11 = Undefined
	}
	if cp.Chis.C22 == chainID {
		cp.Chis.C22 = Undefined
	}
	cp.Chis.C13 = removeChainID(cp.Chis.C13, chainID)
	cp.Chis.C14 = removeChainID(cp.Chis.C14, chainID)
	cp.Chis.C33 = removeChainID(cp.Chis.C33, chainID)
	cp.Chis.C44 = removeChainID(cp.Chis.C44, chainID)
	cp.Chis.C34 = removeChainID(cp.Chis.C34, chainID)
}

// Populate rebuilds Chis from scratch over every chain currently owned by
// this component.
func (cp *Component) Populate(g *Graph) {
	cp.Chis = Chis{C11: Undefined, C22: Undefined}
	for _, chainID := range cp.ChainIDs {
		cp.Include(g, chainID)
	}
}
