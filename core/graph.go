// File: graph.go
// Role: Graph — the aggregate owner of all chains and components, per §3/§4.5.
// Ownership (§5, §9):
//   - Graph exclusively owns Chains and Components (dense slices indexed by
//     ChainID/ComponentID). Every cross-reference elsewhere in this package
//     is an integer id into one of these two slices, never a pointer.
//   - Deletions compact the owning slice by swapping the last element into
//     the vacated slot and renaming it (RenameChain / component rename),
//     mirroring AddEdge/RemoveEdge's O(1)-amortized discipline in the core
//     package this was adapted from.
// AI-HINT (file):
//   - Update() is the single choke point every transform must call before
//     returning (§5): it rebuilds GLM/GLA, each component's Chis, and the
//     VerticesView so external observers only ever see consistent state.
package core

import "github.com/go-logr/logr"

// Graph is the aggregate of chains and components.
type Graph struct {
	Chains     []*Chain
	Components []*Component

	// EdgeNum mirrors the total live edge count; also doubles as the next
	// graph-wide edge id to hand out (ids are always dense in [0, EdgeNum)).
	EdgeNum int

	// GLM maps a graph-wide edge id to its hosting chain id.
	GLM []ChainID
	// GLA maps a graph-wide edge id to its chain-local position.
	GLA []int

	// Vertices is the on-demand vertex enumeration view, refreshed by Update.
	Vertices *VerticesView

	// Chis aggregates every component's classification for O(1) global queries.
	Chis Chis

	// log is the structured logger handed in at construction and exposed
	// through Log(); the transform packages do not write to it themselves.
	// Defaults to a no-op logger.
	log logr.Logger

	// rec receives transform/pulling/component counters; defaults to a
	// no-op recorder.
	rec Recorder
}

// NewGraph returns an empty Graph configured by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{log: logr.Discard(), rec: discardRecorder{}}
	for _, opt := range opts {
		opt(g)
	}
	g.Vertices = newVerticesView(g)

	return g
}

// Log returns the graph's logger, for transform packages that need to
// record entry/exit without importing logr themselves at the call site.
func (g *Graph) Log() logr.Logger { return g.log }

// Rec returns the graph's metrics recorder, for transform packages that
// need to report counters without importing a metrics backend themselves.
func (g *Graph) Rec() Recorder { return g.rec }

// ChainByID returns the chain for id, or false if id is out of range.
func (g *Graph) ChainByID(id ChainID) (*Chain, bool) {
	if int(id) < 0 || int(id) >= len(g.Chains) {
		return nil, false
	}

	return g.Chains[id], true
}

// ComponentByID returns the component for id, or false if id is out of range.
func (g *Graph) ComponentByID(id ComponentID) (*Component, bool) {
	if int(id) < 0 || int(id) >= len(g.Components) {
		return nil, false
	}

	return g.Components[id], true
}

// ChainAt resolves the chain addressed by a slot.
func (g *Graph) ChainAt(s Slot) *Chain { return g.Chains[s.Chain] }

// EdgeAt returns the edge with graph-wide id ind.
func (g *Graph) EdgeAt(ind EdgeID) (Edge, bool) {
	if int(ind) < 0 || int(ind) >= len(g.GLM) {
		return Edge{}, false
	}
	ch := g.Chains[g.GLM[ind]]
	pos := g.GLA[ind]
	if pos < 0 || pos >= len(ch.Edges) {
		return Edge{}, false
	}

	return ch.Edges[pos], true
}

// NextGlobalEdgeID returns the id to assign to the next edge created.
func (g *Graph) NextGlobalEdgeID() EdgeID { return EdgeID(g.EdgeNum) }

// addChain appends chain to Graph.Chains, assigning it the next dense id.
func (g *Graph) addChain(ch *Chain) ChainID {
	id := ChainID(len(g.Chains))
	ch.ID = id
	g.Chains = append(g.Chains, ch)

	return id
}

// addComponentObj appends comp to Graph.Components, assigning it the next id.
func (g *Graph) addComponentObj(cp *Component) ComponentID {
	id := ComponentID(len(g.Components))
	cp.ID = id
	g.Components = append(g.Components, cp)

	return id
}

// AddSingleChainComponent installs a new disconnected linear chain of the
// given length as its own component, per §4.9. Edge weights default to zero.
func (g *Graph) AddSingleChainComponent(length int) ComponentID {
	ch := &Chain{}
	next := g.NextGlobalEdgeID()
	for i := 0; i < length; i++ {
		ch.Edges = append(ch.Edges, Edge{Ind: next, Indw: i})
		next++
	}
	chainID := g.addChain(ch)
	ch.renumber()

	cp := NewComponent(0)
	cp.Append(chainID)
	compID := g.addComponentObj(cp)
	ch.ComponentID = compID

	g.Update()

	return compID
}

// GenerateSingleChainComponents installs num disconnected linear chains of
// the given length, each as its own component, and returns their ids.
func (g *Graph) GenerateSingleChainComponents(num, length int) []ComponentID {
	out := make([]ComponentID, 0, num)
	for i := 0; i < num; i++ {
		out = append(out, g.AddSingleChainComponent(length))
	}

	return out
}

// AddComponent installs a pre-built set of chains (already cross-linked by
// the caller) as one new component.
func (g *Graph) AddComponent(chains []*Chain) ComponentID {
	cp := NewComponent(0)
	for _, ch := range chains {
		chainID := g.addChain(ch)
		ch.ComponentID = ComponentID(len(g.Components))
		cp.Append(chainID)
	}
	compID := g.addComponentObj(cp)
	for _, chainID := range cp.ChainIDs {
		g.Chains[chainID].ComponentID = compID
	}

	g.Update()

	return compID
}

// copyNeigs copies the neighbor set at fromSlot onto toSlot, fixing the
// symmetric back-references of every neighbor so they now point at toSlot
// instead of fromSlot. Used by the merger core when one free end inherits
// another chain end's connectivity (§4.6).
func (g *Graph) copyNeigs(fromSlot, toSlot Slot) {
	fromChain := g.ChainAt(fromSlot)
	fromNg := fromChain.Ngs(fromSlot.End)
	toChain := g.ChainAt(toSlot)
	toNg := toChain.Ngs(toSlot.End)
	for _, s := range fromNg.Slots() {
		toNg.Insert(s)
		neighChain := g.ChainAt(s)
		neighChain.Ngs(s.End).Replace(fromSlot, toSlot)
	}
	fromNg.Clear()
}

// removeSlotFromNeigs disconnects s from every neighbor currently listed at
// s: for each neighbor u in s's neighborhood, removes s from u's own
// neighborhood (but leaves s's own neighborhood list for the caller to clear).
func (g *Graph) removeSlotFromNeigs(s Slot) {
	ch := g.ChainAt(s)
	ng := ch.Ngs(s.End)
	for _, u := range ng.Slots() {
		neighChain := g.ChainAt(u)
		neighChain.Ngs(u.End).Remove(s)
	}
}

// replaceSlotInNeigs rewrites every neighborhood entry equal to oldS into
// newS. Used when a chain is reversed (its A/B ends swap identity) or
// renamed, to keep neighbor back-references correct.
func (g *Graph) replaceSlotInNeigs(oldS, newS Slot) {
	ch := g.ChainAt(oldS)
	ng := ch.Ngs(oldS.End)
	for _, u := range ng.Slots() {
		neighChain := g.ChainAt(u)
		neighChain.Ngs(u.End).Replace(oldS, newS)
	}
}

// RenameChain moves neighborhoods (both ends), edges, component-local id and
// component id from chain `from` onto chain `to`, updating every external
// slot that referenced `from`. Used to keep chain ids dense after a deletion
// pops the last chain into the vacated slot (§4.5).
func (g *Graph) RenameChain(from, to ChainID) {
	moved := g.Chains[from]

	for _, end := range []End{A, B} {
		ng := moved.Ngs(end)
		slots := ng.Slots()
		for i, s := range slots {
			if s.Chain == from {
				slots[i] = EndSlot(to, s.End)
			}
		}
	}
	moved.ID = to
	moved.renumber()

	for _, end := range []End{A, B} {
		for _, s := range moved.Ngs(end).Slots() {
			neighChain := g.Chains[s.Chain]
			neighChain.Ngs(s.End).Replace(EndSlot(from, end), EndSlot(to, end))
		}
	}

	g.Chains[to] = moved
	if comp, ok := g.ComponentByID(moved.ComponentID); ok {
		for i, id := range comp.ChainIDs {
			if id == from {
				comp.ChainIDs[i] = to
			}
		}
	}
}

// popLastChain removes the last chain from Graph.Chains. Callers must have
// already detached it from every component and neighborhood.
func (g *Graph) popLastChain() {
	g.Chains = g.Chains[:len(g.Chains)-1]
}

// MergeComponents appends donor's chains onto acceptor and removes donor,
// compacting Graph.Components by renaming the last component into donor's
// vacated slot when donor was not already last.
func (g *Graph) MergeComponents(acc, don ComponentID) {
	if acc == don {
		return
	}
	accC := g.Components[acc]
	donC := g.Components[don]
	for _, chainID := range donC.ChainIDs {
		g.Chains[chainID].ComponentID = acc
		accC.Append(chainID)
	}

	last := ComponentID(len(g.Components) - 1)
	if don != last {
		g.renameComponent(last, don)
	}
	g.Components = g.Components[:len(g.Components)-1]

	accC.RebuildIndices(g)
}

// renameComponent moves a component object from id `from` into slot `to`,
// fixing every chain's ComponentID back-reference, mirroring RenameChain.
func (g *Graph) renameComponent(from, to ComponentID) {
	moved := g.Components[from]
	moved.SetInd(to)
	for _, chainID := range moved.ChainIDs {
		g.Chains[chainID].ComponentID = to
	}
	g.Components[to] = moved
}

// IndsToChainLink returns the unique pair of end-slots that bind two edges
// which are each a boundary edge of two directly-connected chains.
func (g *Graph) IndsToChainLink(ind1, ind2 EdgeID) (Slot, Slot, bool) {
	e1, ok1 := g.EdgeAt(ind1)
	e2, ok2 := g.EdgeAt(ind2)
	if !ok1 || !ok2 {
		return Slot{}, Slot{}, false
	}
	c1 := g.Chains[e1.W]
	c2 := g.Chains[e2.W]

	for _, end1 := range []End{A, B} {
		be, ok := c1.EndEdge(end1)
		if !ok || be.Ind != ind1 {
			continue
		}
		for _, s := range c1.Ngs(end1).Slots() {
			if s.Chain != c2.ID {
				continue
			}
			be2, ok2 := c2.EndEdge(s.End)
			if ok2 && be2.Ind == ind2 {
				return EndSlot(c1.ID, end1), s, true
			}
		}
	}

	return Slot{}, Slot{}, false
}

// CutComponentAt runs reachability from s within its component, deciding
// whether disconnecting at s's junction would split off an isolated side.
// If so, it moves the unreachable side into a brand-new component. Returns
// whether the (possibly shrunk) original component remains a cycle overall.
func (g *Graph) CutComponentAt(s Slot) (remainsCycled bool, newComponent ComponentID, split bool) {
	ch := g.ChainAt(s)
	comp := g.Components[ch.ComponentID]

	reachable := reachableEndSlotChains(g, comp, s.Chain)
	if len(reachable) == len(comp.ChainIDs) {
		return true, Undefined, false
	}

	blocked := make([]ChainID, 0, len(comp.ChainIDs)-len(reachable))
	for _, id := range comp.ChainIDs {
		if !reachable[id] {
			blocked = append(blocked, id)
		}
	}
	newID := g.splitOffChains(comp.ID, blocked)

	return false, newID, true
}

// reachableEndSlotChains returns the set of chain ids in comp reachable from
// seed via neighborhoods (a simple flood fill over the "meta-graph" of
// chain-ends; this stands in for the over-endslots BFS engine of §4.8/pathengine).
func reachableEndSlotChains(g *Graph, comp *Component, seed ChainID) map[ChainID]bool {
	visited := map[ChainID]bool{seed: true}
	stack := []ChainID{seed}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ch := g.Chains[id]
		for _, end := range []End{A, B} {
			for _, nb := range ch.Ngs(end).Slots() {
				if !visited[nb.Chain] && comp.Contains(nb.Chain) {
					visited[nb.Chain] = true
					stack = append(stack, nb.Chain)
				}
			}
		}
	}

	return visited
}

// splitOffChains removes the listed chains from component src and installs
// them as a new component, returning its id.
func (g *Graph) splitOffChains(src ComponentID, chains []ChainID) ComponentID {
	srcC := g.Components[src]
	newC := NewComponent(ComponentID(len(g.Components)))
	g.Components = append(g.Components, newC)
	srcC.MoveTo(g, newC, chains)

	return newC.ID
}

// MoveChains moves the chains in subset from component src into the already
// existing component dst (§4.4 move_to), re-homing their ComponentID and
// refreshing both components' dense indices. Distinct from SplitComponent
// and CutComponentAt, which only ever split a subset into a brand-new
// component: this is for callers that already know the destination.
func (g *Graph) MoveChains(src, dst ComponentID, subset []ChainID) error {
	srcC, ok := g.ComponentByID(src)
	if !ok {
		return ErrComponentNotFound
	}
	dstC, ok := g.ComponentByID(dst)
	if !ok {
		return ErrComponentNotFound
	}
	srcC.MoveTo(g, dstC, subset)

	return nil
}

// SplitComponent partitions cmp's chains into those accessible from s and
// those blocked from it, installing the accessible half as a new component
// and returning its id (s's own chain always counts as accessible, since the
// reachability flood fill includes its seed). When nothing is blocked, no
// component is created and cmp is returned.
func (g *Graph) SplitComponent(cmp ComponentID, s Slot) ComponentID {
	comp := g.Components[cmp]
	accessible := reachableEndSlotChains(g, comp, s.Chain)
	blocked := make([]ChainID, 0, len(comp.ChainIDs))
	reached := make([]ChainID, 0, len(comp.ChainIDs))
	for _, id := range comp.ChainIDs {
		if accessible[id] {
			reached = append(reached, id)
		} else {
			blocked = append(blocked, id)
		}
	}
	if len(blocked) == 0 {
		return cmp
	}

	return g.splitOffChains(cmp, reached)
}

// UpdateBooks rebuilds GLM, GLA, every component's Chis and the aggregate
// Graph.Chis, and the VerticesView, from current chain/component storage.
func (g *Graph) UpdateBooks() {
	for _, cp := range g.Components {
		cp.RebuildIndices(g)
	}

	total := 0
	maxID := EdgeID(0)
	for _, ch := range g.Chains {
		for _, e := range ch.Edges {
			total++
			if e.Ind >= maxID {
				maxID = e.Ind + 1
			}
		}
	}
	g.GLM = make([]ChainID, maxID)
	g.GLA = make([]int, maxID)
	for _, ch := range g.Chains {
		for _, e := range ch.Edges {
			g.GLM[e.Ind] = ch.ID
			g.GLA[e.Ind] = e.Indw
		}
	}
	g.EdgeNum = total

	g.Chis = Chis{C11: Undefined, C22: Undefined}
	for _, cp := range g.Components {
		if cp.Chis.C11 != Undefined {
			g.Chis.C11 = cp.Chis.C11
		}
		if cp.Chis.C22 != Undefined {
			g.Chis.C22 = cp.Chis.C22
		}
		g.Chis.C13 = append(g.Chis.C13, cp.Chis.C13...)
		g.Chis.C14 = append(g.Chis.C14, cp.Chis.C14...)
		g.Chis.C33 = append(g.Chis.C33, cp.Chis.C33...)
		g.Chis.C44 = append(g.Chis.C44, cp.Chis.C44...)
		g.Chis.C34 = append(g.Chis.C34, cp.Chis.C34...)
	}

	g.Vertices = newVerticesView(g)
}

// UpdateAdjacency invalidates every component's cached adjacency lists so the
// next AdjacencyListEdges/AdjacencyListChains call rebuilds them lazily.
func (g *Graph) UpdateAdjacency() {
	for _, cp := range g.Components {
		cp.invalidateAdjacency()
	}
}

// Update is the single end-of-transform choke point (§5): it rebuilds the
// index books, then drops stale adjacency caches.
func (g *Graph) Update() {
	g.UpdateBooks()
	g.UpdateAdjacency()
	g.rec.ObserveComponentCount(len(g.Components))
}
