package vertexsplit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/vertexsplit"
)

func TestToOneOne_BulkSplitsChainInTwo(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(3)
	comp, _ := g.ComponentByID(compID)
	w := comp.ChainIDs[0]

	left, right, _, _, err := vertexsplit.ToOneOne(g, core.BulkSlot(w, 1))
	require.NoError(t, err)
	require.True(t, left.IsEnd())
	require.True(t, right.IsEnd())

	leftChain, _ := g.ChainByID(left.Chain)
	rightChain, _ := g.ChainByID(right.Chain)
	require.Equal(t, 1, leftChain.Length())
	require.Equal(t, 2, rightChain.Length())
}

func TestToOneOne_DisconnectedCycleOpensBackUp(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(2)
	comp, _ := g.ComponentByID(compID)
	w := comp.ChainIDs[0]

	ch, _ := g.ChainByID(w)
	ch.Ngs(core.A).Insert(core.EndSlot(w, core.B))
	ch.Ngs(core.B).Insert(core.EndSlot(w, core.A))
	require.True(t, ch.IsDisconnectedCycle())

	_, _, _, split, err := vertexsplit.ToOneOne(g, core.EndSlot(w, core.A))
	require.NoError(t, err)
	require.False(t, split)
	require.Equal(t, 0, ch.Ngs(core.A).Num())
	require.Equal(t, 0, ch.Ngs(core.B).Num())
}

func TestToOneDMinus1_RejectsBulkSlot(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(3)
	comp, _ := g.ComponentByID(compID)
	w := comp.ChainIDs[0]

	_, _, err := vertexsplit.ToOneDMinus1(g, core.BulkSlot(w, 1))
	require.ErrorIs(t, err, vertexsplit.ErrNotBulk)
}
