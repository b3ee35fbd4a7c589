package junction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/junction"
)

func TestToCycle(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(2)
	comp, _ := g.ComponentByID(compID)
	chainID := comp.ChainIDs[0]

	_, err := junction.ToCycle(g, chainID)
	require.NoError(t, err)

	ch, _ := g.ChainByID(chainID)
	require.True(t, ch.IsDisconnectedCycle())

	_, err = junction.ToCycle(g, chainID)
	require.ErrorIs(t, err, junction.ErrAlreadyCycle)
}

func TestToCycle_TooShort(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(1)
	comp, _ := g.ComponentByID(compID)

	_, err := junction.ToCycle(g, comp.ChainIDs[0])
	require.ErrorIs(t, err, core.ErrChainTooShort)
}

func TestAntiparallel_ConcatenatesAndRemovesW2(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	c0 := g.AddSingleChainComponent(1)
	c1 := g.AddSingleChainComponent(1)
	comp0, _ := g.ComponentByID(c0)
	comp1, _ := g.ComponentByID(c1)
	w1, w2 := comp0.ChainIDs[0], comp1.ChainIDs[0]

	before := len(g.Chains)

	_, _, err := junction.Antiparallel(g, core.A, w1, w2)
	require.NoError(t, err)

	// w2 is swap-compacted away: one fewer chain than before.
	require.Len(t, g.Chains, before-1)

	merged, ok := g.ChainByID(w1)
	require.True(t, ok)
	require.Equal(t, 2, merged.Length())
}

func TestAntiparallel_EndAPreservesFarNeighborBackPointers(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	c1 := g.AddSingleChainComponent(1)
	c3 := g.AddSingleChainComponent(1)
	comp1, _ := g.ComponentByID(c1)
	comp3, _ := g.ComponentByID(c3)
	w1, w3 := comp1.ChainIDs[0], comp3.ChainIDs[0]

	ch1, _ := g.ChainByID(w1)
	ch3, _ := g.ChainByID(w3)
	ch1.Ngs(core.B).Insert(core.EndSlot(w3, core.A))
	ch3.Ngs(core.A).Insert(core.EndSlot(w1, core.B))
	g.MergeComponents(c1, c3)
	g.Update()

	c2 := g.AddSingleChainComponent(1)
	c4 := g.AddSingleChainComponent(1)
	comp2, _ := g.ComponentByID(c2)
	comp4, _ := g.ComponentByID(c4)
	w2, w4 := comp2.ChainIDs[0], comp4.ChainIDs[0]

	ch2, _ := g.ChainByID(w2)
	ch4, _ := g.ChainByID(w4)
	ch2.Ngs(core.B).Insert(core.EndSlot(w4, core.A))
	ch4.Ngs(core.A).Insert(core.EndSlot(w2, core.B))
	g.MergeComponents(c2, c4)
	g.Update()

	_, _, err := junction.Antiparallel(g, core.A, w1, w2)
	require.NoError(t, err)

	merged, ok := g.ChainByID(w1)
	require.True(t, ok)
	require.Equal(t, []core.Slot{core.EndSlot(w3, core.A)}, merged.Ngs(core.A).Slots())

	// w4 may have been swap-renamed into w2's vacated chain id by the merge's
	// compaction step; resolve its current id from w1's own neighbor slot
	// rather than assuming the pre-merge id it was built with still exists.
	bSlots := merged.Ngs(core.B).Slots()
	require.Len(t, bSlots, 1)
	w4Now := bSlots[0].Chain
	require.Equal(t, core.A, bSlots[0].End)

	// w3 and w4's own back-pointers must follow w1's slots to their new
	// labels, not stay pinned to the pre-merge end that used to hold them.
	ch3, _ = g.ChainByID(w3)
	ch4, _ = g.ChainByID(w4Now)
	require.Equal(t, []core.Slot{core.EndSlot(w1, core.A)}, ch3.Ngs(core.A).Slots())
	require.Equal(t, []core.Slot{core.EndSlot(w1, core.B)}, ch4.Ngs(core.A).Slots())
}

func TestParallel_SameChainRejected(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(1)
	comp, _ := g.ComponentByID(compID)
	w := comp.ChainIDs[0]

	_, _, err := junction.Parallel(g, w, w)
	require.ErrorIs(t, err, junction.ErrSameChain)
}
