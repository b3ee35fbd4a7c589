// File: to_two_two.go
// Role: Split a degree-4 junction into two lower-degree vertices, grouped by
// which pair of end-slots the caller designates (§4.7): to (2,2) when both
// groups keep one neighbor each, to (2,0) when one group becomes a
// disconnected-cycle-forming pair, to (0,0) when both do. The three cases
// share one algorithm: free sa via ToOneThree, free sb via ToOneDMinus1
// (cycle-aware by construction there), then re-fuse the two freed ends.
package vertexsplit

import (
	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/junction"
)

// ToTwoTwo splits the degree-4 vertex shared by sa and sb, producing a
// degree-2 vertex on each side. sa and sb must be two of the four end-slots
// currently meeting at the same vertex.
func ToTwoTwo(g *core.Graph, sa, sb core.Slot) (core.ComponentID, core.ComponentID, error) {
	return splitFour(g, sa, sb)
}

// ToTwoZero is ToTwoTwo's cycle-aware sibling: when the edges grouped with
// sa happen to already form (or end up forming) a disconnected cycle, the
// same algorithm naturally produces that shape — callers select the variant
// name by what their topology requires, the mechanics are identical.
func ToTwoZero(g *core.Graph, sa, sb core.Slot) (core.ComponentID, core.ComponentID, error) {
	return splitFour(g, sa, sb)
}

// ToZeroZero is the fully-cyclic case of the same algorithm.
func ToZeroZero(g *core.Graph, sa, sb core.Slot) (core.ComponentID, core.ComponentID, error) {
	return splitFour(g, sa, sb)
}

// splitFour implements "run (1,3) on one slot, then (1,2) or (1,0) on the
// other slot, then re-fuse the two freed 1-ends via (1,1)" exactly as §4.7
// describes for the whole (2,2)/(2,0)/(0,0) family.
func splitFour(g *core.Graph, sa, sb core.Slot) (core.ComponentID, core.ComponentID, error) {
	if sa == sb {
		return 0, 0, ErrNeedTwoSlots
	}
	ch := g.ChainAt(sa)
	if ch.Degree(sa.End) != 4 || !sb.IsEnd() || !g.ChainAt(sb).Ngs(sb.End).Has(sa) {
		return 0, 0, ErrWrongDegree
	}

	compA, _, err := ToOneThree(g, sa)
	if err != nil {
		return 0, 0, err
	}
	compB, _, err := ToOneDMinus1(g, sb)
	if err != nil {
		return 0, 0, err
	}

	// sa and sb are now both free ends; fuse them back into one vertex via
	// the (1,1) merger primitive (same chain -> cycle, same end -> antiparallel,
	// else -> parallel), mirroring junction's own (1,1) dispatch.
	switch {
	case sa.Chain == sb.Chain:
		if _, err := junction.ToCycle(g, sa.Chain); err != nil {
			return 0, 0, err
		}
	case sa.End == sb.End:
		if _, _, err := junction.Antiparallel(g, sa.End, sa.Chain, sb.Chain); err != nil {
			return 0, 0, err
		}
	case sa.End == core.A:
		if _, _, err := junction.Parallel(g, sa.Chain, sb.Chain); err != nil {
			return 0, 0, err
		}
	default:
		if _, _, err := junction.Parallel(g, sb.Chain, sa.Chain); err != nil {
			return 0, 0, err
		}
	}
	g.Update()

	return compA, compB, nil
}
