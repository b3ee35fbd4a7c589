package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
)

func TestEnd2A_MatchesBoundaryPositions(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(3)
	comp, _ := g.ComponentByID(compID)
	ch, _ := g.ChainByID(comp.ChainIDs[0])

	require.Equal(t, 0, ch.End2A(core.A))
	require.Equal(t, 2, ch.End2A(core.B))
}

func TestA2End_BoundaryPositionsResolveUnambiguously(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(3)
	comp, _ := g.ComponentByID(compID)
	ch, _ := g.ChainByID(comp.ChainIDs[0])

	end, ok := ch.A2End(0)
	require.True(t, ok)
	require.Equal(t, core.A, end)

	end, ok = ch.A2End(2)
	require.True(t, ok)
	require.Equal(t, core.B, end)

	_, ok = ch.A2End(1)
	require.False(t, ok)
}

func TestA2End_LengthOneChainIsAmbiguous(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(1)
	comp, _ := g.ComponentByID(compID)
	ch, _ := g.ChainByID(comp.ChainIDs[0])

	_, ok := ch.A2End(0)
	require.False(t, ok)
}

func TestInd2End_MultiEdgeChainResolvesByBoundary(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(3)
	comp, _ := g.ComponentByID(compID)
	ch, _ := g.ChainByID(comp.ChainIDs[0])

	end, ok := ch.Ind2End(ch.Edges[0].Ind, core.A)
	require.True(t, ok)
	require.Equal(t, core.A, end)

	end, ok = ch.Ind2End(ch.Edges[2].Ind, core.B)
	require.True(t, ok)
	require.Equal(t, core.B, end)

	_, ok = ch.Ind2End(ch.Edges[1].Ind, core.A)
	require.False(t, ok)
}

func TestInd2End_LengthOneChainUsesHintAndOrientation(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(1)
	comp, _ := g.ComponentByID(compID)
	ch, _ := g.ChainByID(comp.ChainIDs[0])

	require.False(t, ch.Edges[0].Reversed)

	end, ok := ch.Ind2End(ch.Edges[0].Ind, core.A)
	require.True(t, ok)
	require.Equal(t, core.A, end)

	ch.Edges[0].Reversed = true
	end, ok = ch.Ind2End(ch.Edges[0].Ind, core.A)
	require.True(t, ok)
	require.Equal(t, core.B, end)

	_, ok = ch.Ind2End(ch.Edges[0].Ind+1000, core.A)
	require.False(t, ok)
}
