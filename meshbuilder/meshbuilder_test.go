package meshbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/meshbuilder"
)

func TestBuildMesh_Path(t *testing.T) {
	t.Parallel()

	g, ids, err := meshbuilder.BuildMesh(nil, nil, meshbuilder.Path(4))
	require.NoError(t, err)
	require.Len(t, ids, 1)

	comp, ok := g.ComponentByID(ids[0])
	require.True(t, ok)
	ch, _ := g.ChainByID(comp.ChainIDs[0])
	require.Equal(t, 4, ch.Length())
}

func TestBuildMesh_Cycle(t *testing.T) {
	t.Parallel()

	g, ids, err := meshbuilder.BuildMesh(nil, nil, meshbuilder.Cycle(3))
	require.NoError(t, err)

	comp, _ := g.ComponentByID(ids[0])
	ch, _ := g.ChainByID(comp.ChainIDs[0])
	require.True(t, ch.IsDisconnectedCycle())
}

func TestBuildMesh_Star(t *testing.T) {
	t.Parallel()

	g, ids, err := meshbuilder.BuildMesh(nil, nil, meshbuilder.Star(4))
	require.NoError(t, err)

	st := g.Stats()
	require.Equal(t, 1, st.ComponentCount)
	require.Equal(t, 4, st.EdgeCount)
	require.Equal(t, 1, st.VertexCount[4])
	require.Equal(t, 4, st.VertexCount[1])
	require.Len(t, ids, 1)
}

func TestStar_RejectsTooFewSpokes(t *testing.T) {
	t.Parallel()

	_, _, err := meshbuilder.BuildMesh(nil, nil, meshbuilder.Star(2))
	require.ErrorIs(t, err, meshbuilder.ErrTooFewEdges)
}

func TestWithDefaultWeight_StampsEveryEdge(t *testing.T) {
	t.Parallel()

	g, ids, err := meshbuilder.BuildMesh(nil, []meshbuilder.MeshOption{meshbuilder.WithDefaultWeight(3)}, meshbuilder.Path(2))
	require.NoError(t, err)

	comp, _ := g.ComponentByID(ids[0])
	ch, _ := g.ChainByID(comp.ChainIDs[0])
	for _, e := range ch.Edges {
		require.Equal(t, 3.0, e.Weight)
	}
}
