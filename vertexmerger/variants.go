// File: variants.go
// Role: The seven vertex-merger variants of §4.6, built on top of the
// junction primitives and (for variants that target a bulk slot)
// vertexsplit.ToOneOne.
package vertexmerger

import (
	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/junction"
	"github.com/chainmesh/chainmesh/vertexsplit"
)

// MergeOneOne merges two free ends s1, s2 into a single vertex: same chain
// closes into a cycle, same end id fuses antiparallel, otherwise parallel.
func MergeOneOne(g *core.Graph, s1, s2 core.Slot) ([]core.ComponentID, error) {
	g.Rec().ObserveTransform("vertexmerger.MergeOneOne")
	if !s1.IsEnd() || !s2.IsEnd() {
		return nil, ErrSlotNotFree
	}

	switch {
	case s1.Chain == s2.Chain:
		c, err := junction.ToCycle(g, s1.Chain)
		if err != nil {
			return nil, err
		}

		return []core.ComponentID{c}, nil
	case s1.End == s2.End:
		c1, c2, err := junction.Antiparallel(g, s1.End, s1.Chain, s2.Chain)
		if err != nil {
			return nil, err
		}

		return dedupComps(c1, c2), nil
	case s1.End == core.A:
		c1, c2, err := junction.Parallel(g, s1.Chain, s2.Chain)
		if err != nil {
			return nil, err
		}

		return dedupComps(c1, c2), nil
	default:
		c1, c2, err := junction.Parallel(g, s2.Chain, s1.Chain)
		if err != nil {
			return nil, err
		}

		return dedupComps(c1, c2), nil
	}
}

// MergeOneTwo merges a free end into a bulk slot (an internal degree-2
// vertex), producing a degree-3 vertex. The target is split into two free
// ends via vertexsplit.ToOneOne, then all three resulting ends are wired
// into one symmetric degree-3 neighborhood.
func MergeOneTwo(g *core.Graph, free, target core.Slot) ([]core.ComponentID, error) {
	g.Rec().ObserveTransform("vertexmerger.MergeOneTwo")
	if !free.IsEnd() || g.ChainAt(free).Ngs(free.End).Num() != 0 {
		return nil, ErrSlotNotFree
	}

	left, right, _, _, err := vertexsplit.ToOneOne(g, target)
	if err != nil {
		return nil, err
	}

	wireMesh(g, free, left, right)

	// The split may have left the two halves in different components; all
	// three ends now share one vertex, so every component involved is merged.
	// The acceptor's id is re-read each time since a merge may rename it.
	for _, s := range []core.Slot{right, free} {
		acc := g.ChainAt(left).ComponentID
		if c := g.ChainAt(s).ComponentID; c != acc {
			g.MergeComponents(acc, c)
		}
	}
	comp := g.ChainAt(left).ComponentID
	g.Update()

	return []core.ComponentID{comp}, nil
}

// MergeOneThree merges a free end into an existing end-slot that already has
// two neighbors (a degree-3 junction), producing a degree-4 junction: the
// free end is added symmetrically to the target and each of its two
// existing neighbors.
func MergeOneThree(g *core.Graph, free, target core.Slot) ([]core.ComponentID, error) {
	g.Rec().ObserveTransform("vertexmerger.MergeOneThree")
	if !free.IsEnd() || g.ChainAt(free).Ngs(free.End).Num() != 0 {
		return nil, ErrSlotNotFree
	}
	tch := g.ChainAt(target)
	others := tch.Ngs(target.End).Slots()
	if len(others) != 2 {
		return nil, ErrWrongNeighborCount
	}
	n1, n2 := others[0], others[1]

	fch := g.ChainAt(free)
	c1, c2 := fch.ComponentID, tch.ComponentID

	for _, peer := range []core.Slot{target, n1, n2} {
		fch.Ngs(free.End).Insert(peer)
		g.ChainAt(peer).Ngs(peer.End).Insert(free)
	}

	if c1 != c2 {
		g.MergeComponents(c2, c1)
	}
	g.Update()

	return dedupComps(c1, c2), nil
}

// MergeOneZero connects a free end to both ends of a disconnected cycle
// chain: the cycle's two ends remain each other's neighbors and additionally
// gain the free end as a third neighbor (a degree-3 vertex on the cycle's
// side, degree-1-no-more on the free side).
func MergeOneZero(g *core.Graph, free core.Slot, cycleChain core.ChainID) ([]core.ComponentID, error) {
	g.Rec().ObserveTransform("vertexmerger.MergeOneZero")
	if !free.IsEnd() || g.ChainAt(free).Ngs(free.End).Num() != 0 {
		return nil, ErrSlotNotFree
	}
	ch, ok := g.ChainByID(cycleChain)
	if !ok {
		return nil, core.ErrChainNotFound
	}
	if !ch.IsDisconnectedCycle() {
		return nil, core.ErrNotCycle
	}

	sA, sB := core.EndSlot(cycleChain, core.A), core.EndSlot(cycleChain, core.B)
	fch := g.ChainAt(free)
	fch.Ngs(free.End).Insert(sA)
	fch.Ngs(free.End).Insert(sB)
	ch.Ngs(core.A).Insert(free)
	ch.Ngs(core.B).Insert(free)

	c1, c2 := fch.ComponentID, ch.ComponentID
	if c1 != c2 {
		g.MergeComponents(c2, c1)
	}
	g.Update()

	return dedupComps(c1, c2), nil
}

// MergeTwoTwo, MergeTwoZero and MergeZeroZero each merge two slots — bulk
// slots split via vertexsplit.ToOneOne, or a disconnected cycle's own two
// ends used directly (a cycle's single vertex already provides both
// participants, needing one fewer split, per §4.6) — into one degree-4
// junction: all four resulting end-slots list the other three.
func MergeTwoTwo(g *core.Graph, s1, s2 core.Slot) ([]core.ComponentID, error) {
	return mergeFour(g, s1, s2)
}

// MergeTwoZero is mergeFour applied where one side is already a
// disconnected-cycle vertex.
func MergeTwoZero(g *core.Graph, s1, s2 core.Slot) ([]core.ComponentID, error) {
	return mergeFour(g, s1, s2)
}

// MergeZeroZero is mergeFour applied where both sides are disconnected-cycle
// vertices.
func MergeZeroZero(g *core.Graph, s1, s2 core.Slot) ([]core.ComponentID, error) {
	return mergeFour(g, s1, s2)
}

func mergeFour(g *core.Graph, s1, s2 core.Slot) ([]core.ComponentID, error) {
	g.Rec().ObserveTransform("vertexmerger.mergeFour")
	l1, r1, err := splitOrUseCycle(g, s1)
	if err != nil {
		return nil, err
	}
	l2, r2, err := splitOrUseCycle(g, s2)
	if err != nil {
		return nil, err
	}

	comps := make(map[core.ComponentID]struct{})
	for _, s := range []core.Slot{l1, r1, l2, r2} {
		comps[g.ChainAt(s).ComponentID] = struct{}{}
	}
	var acceptor core.ComponentID
	first := true
	var touched []core.ComponentID
	for c := range comps {
		touched = append(touched, c)
		if first {
			acceptor = c
			first = false
		} else {
			g.MergeComponents(acceptor, c)
		}
	}

	wireMesh(g, l1, r1, l2, r2)
	g.Update()

	return touched, nil
}

// splitOrUseCycle returns the two participant end-slots for one side of a
// degree-4 merger: splitting a bulk slot in two, or using a disconnected
// cycle's existing A/B ends directly.
func splitOrUseCycle(g *core.Graph, s core.Slot) (core.Slot, core.Slot, error) {
	ch := g.ChainAt(s)
	if ch.IsDisconnectedCycle() && s.IsEnd() {
		ch.Ngs(core.A).Clear()
		ch.Ngs(core.B).Clear()

		return core.EndSlot(ch.ID, core.A), core.EndSlot(ch.ID, core.B), nil
	}

	left, right, _, _, err := vertexsplit.ToOneOne(g, s)

	return left, right, err
}

// wireMesh links every pair of the given end-slots symmetrically, forming a
// single junction vertex of degree len(slots).
func wireMesh(g *core.Graph, slots ...core.Slot) {
	for i, a := range slots {
		for j, b := range slots {
			if i == j {
				continue
			}
			g.ChainAt(a).Ngs(a.End).Insert(b)
		}
	}
}

func dedupComps(c1, c2 core.ComponentID) []core.ComponentID {
	if c1 == c2 {
		return []core.ComponentID{c1}
	}

	return []core.ComponentID{c1, c2}
}
