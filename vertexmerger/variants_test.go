package vertexmerger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/vertexmerger"
)

func twoSingleChains(g *core.Graph) (core.ChainID, core.ChainID) {
	c0 := g.AddSingleChainComponent(1)
	c1 := g.AddSingleChainComponent(1)
	comp0, _ := g.ComponentByID(c0)
	comp1, _ := g.ComponentByID(c1)

	return comp0.ChainIDs[0], comp1.ChainIDs[0]
}

func TestMergeOneOne_SameChainClosesCycle(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(2)
	comp, _ := g.ComponentByID(compID)
	w := comp.ChainIDs[0]

	comps, err := vertexmerger.MergeOneOne(g, core.EndSlot(w, core.A), core.EndSlot(w, core.B))
	require.NoError(t, err)
	require.Len(t, comps, 1)

	ch, _ := g.ChainByID(w)
	require.True(t, ch.IsDisconnectedCycle())
}

func TestMergeOneOne_DifferentChainsFuse(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	w1, w2 := twoSingleChains(g)

	comps, err := vertexmerger.MergeOneOne(g, core.EndSlot(w1, core.B), core.EndSlot(w2, core.A))
	require.NoError(t, err)
	require.NotEmpty(t, comps)

	merged, ok := g.ChainByID(w1)
	require.True(t, ok)
	require.Equal(t, 2, merged.Length())
}

func TestMergeOneOne_RejectsBulkSlot(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(3)
	comp, _ := g.ComponentByID(compID)
	w := comp.ChainIDs[0]

	_, err := vertexmerger.MergeOneOne(g, core.BulkSlot(w, 1), core.EndSlot(w, core.B))
	require.ErrorIs(t, err, vertexmerger.ErrSlotNotFree)
}

func TestMergeOneTwo_ProducesDegreeThree(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	hubID := g.AddSingleChainComponent(2)
	hubComp, _ := g.ComponentByID(hubID)
	hub := hubComp.ChainIDs[0]

	spokeID := g.AddSingleChainComponent(1)
	spokeComp, _ := g.ComponentByID(spokeID)
	spoke := spokeComp.ChainIDs[0]

	free := core.EndSlot(spoke, core.A)
	target := core.BulkSlot(hub, 1)

	comps, err := vertexmerger.MergeOneTwo(g, free, target)
	require.NoError(t, err)
	require.Len(t, comps, 1)
}
