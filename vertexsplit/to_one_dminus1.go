// File: to_one_dminus1.go
// Role: Split to (1, D-1) and to (1,3) — both detach the end-slot s (whose
// vertex has degree D) from its D-1 neighbors, leaving s a free end. What
// happens to the other D-1 ends differs only by how many remain (§4.7):
//   - D=2: the lone other end was already s's sole neighbor; after
//     detaching, it is simply free too — a (1,1) split.
//   - D=3: the other two ends were already mutually linked (full-mesh
//     neighborhoods), so after detaching s they still point at each other —
//     but per this package's invariant (core/chain.go), two distinct chain
//     ends may never remain a literal degree-2 junction, so they are fused
//     into one chain via junction.Antiparallel/Parallel.
//   - D=4 (the to-(1,3) variant): the other three ends were already
//     mutually linked and still are after s leaves — a valid degree-3
//     junction requiring no further fusion.
package vertexsplit

import (
	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/junction"
)

// ToOneDMinus1 splits the vertex at end-slot s (degree D=2 or D=3) into a
// free end plus a degree-(D-1) vertex.
func ToOneDMinus1(g *core.Graph, s core.Slot) (core.ComponentID, bool, error) {
	g.Rec().ObserveTransform("vertexsplit.ToOneDMinus1")
	if !s.IsEnd() {
		return 0, false, ErrNotBulk
	}
	ch := g.ChainAt(s)
	d := ch.Degree(s.End)
	if d != 2 && d != 3 {
		return 0, false, ErrWrongDegree
	}

	return detachEnd(g, s, d)
}

// ToOneThree splits the vertex at end-slot s (degree 4) into a free end plus
// a degree-3 vertex formed by the other three ends, which remain mutually
// linked and require no re-fusion.
func ToOneThree(g *core.Graph, s core.Slot) (core.ComponentID, bool, error) {
	g.Rec().ObserveTransform("vertexsplit.ToOneThree")
	if !s.IsEnd() {
		return 0, false, ErrNotBulk
	}
	ch := g.ChainAt(s)
	if ch.Degree(s.End) != 4 {
		return 0, false, ErrWrongDegree
	}

	return detachEnd(g, s, 4)
}

// detachEnd performs the common first step (disconnect s from every
// neighbor) and then dispatches on how many other ends remain.
func detachEnd(g *core.Graph, s core.Slot, d int) (core.ComponentID, bool, error) {
	ch := g.ChainAt(s)
	ng := ch.Ngs(s.End)
	others := append([]core.Slot{}, ng.Slots()...)

	g.RemoveSlotFromNeigs(s)
	ng.Clear()

	comp, _ := g.ComponentByID(ch.ComponentID)

	if d == 3 {
		n1, n2 := others[0], others[1]
		g.ChainAt(n1).Ngs(n1.End).Remove(n2)
		g.ChainAt(n2).Ngs(n2.End).Remove(n1)

		var err error
		switch {
		case n1.Chain == n2.Chain:
			// The two remaining ends belong to the same chain: fusing them
			// is exactly closing that chain into a cycle (the (1,0) case).
			_, err = junction.ToCycle(g, n1.Chain)
		case n1.End == n2.End:
			_, _, err = junction.Antiparallel(g, n1.End, n1.Chain, n2.Chain)
		case n1.End == core.A:
			_, _, err = junction.Parallel(g, n1.Chain, n2.Chain)
		default:
			_, _, err = junction.Parallel(g, n2.Chain, n1.Chain)
		}
		if err != nil {
			return 0, false, err
		}
		g.Update()

		// s's chain is now detached from the fused pair, so a component
		// split is decided just as for d == 2 or d == 4.
		before := ch.ComponentID
		result := g.SplitComponent(before, core.EndSlot(ch.ID, s.End))
		g.Update()

		return result, result != before, nil
	}

	// d == 2 or d == 4: the remaining ends already form a valid junction
	// (degree-1 free end, or degree-3 full-mesh respectively); only a
	// possible component split needs deciding.
	result := g.SplitComponent(comp.ID, s)
	split := result != comp.ID
	g.Update()

	return result, split, nil
}
