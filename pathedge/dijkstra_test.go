package pathedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/pathedge"
)

func TestShortestPath_WithinOneChain(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(4)
	comp, _ := g.ComponentByID(compID)
	ch, _ := g.ChainByID(comp.ChainIDs[0])

	start := ch.Edges[0].Ind
	target := ch.Edges[3].Ind

	path, err := pathedge.ShortestPath(g, compID, start, target)
	require.NoError(t, err)
	require.Equal(t, []core.EdgeID{start, ch.Edges[1].Ind, ch.Edges[2].Ind, target}, path)
}

func TestShortestPath_NilGraph(t *testing.T) {
	t.Parallel()

	_, err := pathedge.ShortestPath(nil, 0, 0, 0)
	require.ErrorIs(t, err, pathedge.ErrNilGraph)
}

func TestShortestPath_BadComponent(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.AddSingleChainComponent(1)

	_, err := pathedge.ShortestPath(g, core.ComponentID(42), 0, 0)
	require.ErrorIs(t, err, pathedge.ErrBadComponent)
}
