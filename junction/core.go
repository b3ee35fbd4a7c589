// File: core.go
// Role: The three elementary chain-joining operations, ported from the
// vertex-merger core of the system this module generalizes: antiparallel and
// parallel joins of two free ends, and closing one free chain into a cycle.
package junction

import "github.com/chainmesh/chainmesh/core"

// Antiparallel joins end `end` of w1 to end `end` of w2: merging end A of
// both chains reverses w1 first, merging end B of both reverses w2 first, so
// the concatenation reads head-to-tail. w2's edges move onto w1 and w2 is
// removed (swap-compacted); components merge if w1 and w2 started in
// different ones. Returns the (possibly now-equal) component ids of w1, w2.
func Antiparallel(g *core.Graph, end core.End, w1, w2 core.ChainID) (core.ComponentID, core.ComponentID, error) {
	if w1 == w2 {
		return 0, 0, ErrSameChain
	}
	m1, ok1 := g.ChainByID(w1)
	m2, ok2 := g.ChainByID(w2)
	if !ok1 || !ok2 {
		return 0, 0, core.ErrChainNotFound
	}
	if m1.Ngs(end).Num() > 0 || m2.Ngs(end).Num() > 0 {
		return 0, 0, ErrEndOccupied
	}
	if m1.Length() == 0 || m2.Length() == 0 {
		return 0, 0, ErrEmptyChain
	}

	c1, c2 := m1.ComponentID, m2.ComponentID

	if end == core.A {
		g.CopyNeigs(core.EndSlot(w1, core.B), core.EndSlot(w1, core.A))
	}
	g.CopyNeigs(core.EndSlot(w2, end.Opp()), core.EndSlot(w1, core.B))

	if comp, ok := g.ComponentByID(c2); ok {
		comp.Remove(w2)
	}

	if end == core.A {
		m1.Reverse()
	} else {
		m2.Reverse()
	}

	m1.Edges = append(m1.Edges, m2.Edges...)
	m2.Edges = nil
	reindexChain(m1)

	last := g.LastChainID()
	if w2 != last {
		g.RenameChain(last, w2)
	}
	g.PopLastChain()

	if c1 == c2 {
		if comp, ok := g.ComponentByID(c1); ok {
			comp.RebuildIndices(g)
		}
	} else {
		g.MergeComponents(c1, c2)
	}

	g.Update()

	return c1, c2, nil
}

// reindexChain re-numbers a chain's edges after a raw append, without the
// orientation-flip Reverse performs (Reverse already renumbers internally;
// this exists for the parallel path below which appends without reversing).
func reindexChain(ch *core.Chain) {
	for i := range ch.Edges {
		ch.Edges[i].Indw = i
		ch.Edges[i].W = ch.ID
	}
}

// Parallel joins end A of w1 to end B of w2: w1's edges are appended after
// w2's, the merged storage becomes w1, and w2 is removed. Returns the
// (possibly now-equal) component ids of w1, w2.
func Parallel(g *core.Graph, w1, w2 core.ChainID) (core.ComponentID, core.ComponentID, error) {
	if w1 == w2 {
		return 0, 0, ErrSameChain
	}
	m1, ok1 := g.ChainByID(w1)
	m2, ok2 := g.ChainByID(w2)
	if !ok1 || !ok2 {
		return 0, 0, core.ErrChainNotFound
	}
	if m1.Ngs(core.A).Num() > 0 || m2.Ngs(core.B).Num() > 0 {
		return 0, 0, ErrEndOccupied
	}
	if m1.Length() == 0 || m2.Length() == 0 {
		return 0, 0, ErrEmptyChain
	}

	c1, c2 := m1.ComponentID, m2.ComponentID

	g.CopyNeigs(core.EndSlot(w2, core.A), core.EndSlot(w1, core.A))

	if comp, ok := g.ComponentByID(c2); ok {
		comp.Remove(w2)
	}

	merged := append(append([]core.Edge{}, m2.Edges...), m1.Edges...)
	m1.Edges = merged
	reindexChain(m1)

	last := g.LastChainID()
	if w2 != last {
		g.RenameChain(last, w2)
	}
	g.PopLastChain()

	if c1 == c2 {
		if comp, ok := g.ComponentByID(c1); ok {
			comp.RebuildIndices(g)
		}
	} else {
		g.MergeComponents(c1, c2)
	}

	g.Update()

	return c1, c2, nil
}

// ToCycle closes chain w into a disconnected cycle by cross-linking its two
// free ends. Requires w to have both ends free and length >= MinCycleLength.
func ToCycle(g *core.Graph, w core.ChainID) (core.ComponentID, error) {
	ch, ok := g.ChainByID(w)
	if !ok {
		return 0, core.ErrChainNotFound
	}
	if ch.IsDisconnectedCycle() {
		return 0, ErrAlreadyCycle
	}
	if ch.Ngs(core.A).Num() > 0 || ch.Ngs(core.B).Num() > 0 {
		return 0, ErrEndOccupied
	}
	if ch.Length() < core.MinCycleLength {
		return 0, core.ErrChainTooShort
	}

	sA := core.EndSlot(w, core.A)
	sB := core.EndSlot(w, core.B)
	ch.Ngs(core.A).Insert(sB)
	ch.Ngs(core.B).Insert(sA)

	g.Update()

	return ch.ComponentID, nil
}
