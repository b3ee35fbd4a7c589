package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
)

func TestNewGraph_Empty(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.Empty(t, g.Chains)
	require.Empty(t, g.Components)
	require.Equal(t, 0, g.EdgeNum)
}

func TestAddSingleChainComponent(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	id := g.AddSingleChainComponent(3)

	comp, ok := g.ComponentByID(id)
	require.True(t, ok)
	require.Len(t, comp.ChainIDs, 1)

	ch, ok := g.ChainByID(comp.ChainIDs[0])
	require.True(t, ok)
	require.Equal(t, 3, ch.Length())
	require.Equal(t, 0, ch.Ngs(core.A).Num())
	require.Equal(t, 0, ch.Ngs(core.B).Num())
}

func TestGraphStats(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.AddSingleChainComponent(2)
	g.AddSingleChainComponent(1)
	g.Update()

	st := g.Stats()
	require.Equal(t, 2, st.ChainCount)
	require.Equal(t, 2, st.ComponentCount)
	require.Equal(t, 3, st.EdgeCount)
	// both chains are fully disconnected: every end is a degree-1 vertex.
	require.Equal(t, 4, st.VertexCount[1])
}

func TestSlotEndAndOpp(t *testing.T) {
	t.Parallel()

	s := core.EndSlot(0, core.A)
	require.True(t, s.IsEnd())

	opp, ok := s.Opp()
	require.True(t, ok)
	require.Equal(t, core.B, opp.End)
}

func TestMoveChains_TransfersChainIntoExistingComponent(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	src := g.AddSingleChainComponent(2)
	dst := g.AddSingleChainComponent(1)

	srcComp, _ := g.ComponentByID(src)
	movedChain := srcComp.ChainIDs[0]

	err := g.MoveChains(src, dst, []core.ChainID{movedChain})
	require.NoError(t, err)

	srcComp, _ = g.ComponentByID(src)
	dstComp, _ := g.ComponentByID(dst)
	require.False(t, srcComp.Contains(movedChain))
	require.True(t, dstComp.Contains(movedChain))

	ch, ok := g.ChainByID(movedChain)
	require.True(t, ok)
	require.Equal(t, dst, ch.ComponentID)
}

func TestMoveChains_UnknownComponentRejected(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	src := g.AddSingleChainComponent(1)

	err := g.MoveChains(src, core.ComponentID(99), nil)
	require.ErrorIs(t, err, core.ErrComponentNotFound)
}

func TestWithLoggerAndRecorder(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NotNil(t, g.Log())
	require.NotNil(t, g.Rec())

	// default recorder must never panic when observed.
	g.Rec().ObserveTransform("noop")
	g.Rec().ObservePullDistance(1)
	g.Rec().ObserveComponentCount(1)
}
