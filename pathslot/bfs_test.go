package pathslot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/pathslot"
)

func TestShortestPath_AcrossChainBoundary(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(1)
	comp, _ := g.ComponentByID(compID)
	w1 := comp.ChainIDs[0]

	c2 := g.AddSingleChainComponent(1)
	comp2, _ := g.ComponentByID(c2)
	w2 := comp2.ChainIDs[0]

	ch1, _ := g.ChainByID(w1)
	ch2, _ := g.ChainByID(w2)
	ch1.Ngs(core.B).Insert(core.EndSlot(w2, core.A))
	ch2.Ngs(core.A).Insert(core.EndSlot(w1, core.B))
	g.MergeComponents(compID, c2)
	g.Update()

	start := core.EndSlot(w1, core.A)
	target := core.EndSlot(w2, core.B)

	path, err := pathslot.ShortestPath(g, compID, start, target)
	require.NoError(t, err)
	require.Equal(t, start, path[0])
	require.Equal(t, target, path[len(path)-1])
}

func TestBFS_ReportsVisited(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	compID := g.AddSingleChainComponent(2)
	comp, _ := g.ComponentByID(compID)
	w := comp.ChainIDs[0]

	res, err := pathslot.BFS(g, compID, core.EndSlot(w, core.A))
	require.NoError(t, err)
	require.True(t, res.Visited(core.EndSlot(w, core.A)))
	require.True(t, res.Visited(core.EndSlot(w, core.B)))
}
