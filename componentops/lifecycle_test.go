package componentops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/componentops"
	"github.com/chainmesh/chainmesh/core"
)

func TestCreateAndDelete_RoundTrips(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	keep := componentops.Create(g, 2)
	doomed := componentops.Create(g, 3)
	g.Update()

	require.Len(t, g.Components, 2)
	require.Equal(t, 5, g.EdgeNum)

	err := componentops.Delete(g, doomed)
	require.NoError(t, err)

	require.Len(t, g.Components, 1)
	require.Equal(t, 2, g.EdgeNum)

	comp, ok := g.ComponentByID(keep)
	require.True(t, ok)
	ch, ok := g.ChainByID(comp.ChainIDs[0])
	require.True(t, ok)
	require.Equal(t, 2, ch.Length())
}

func TestDelete_UnknownComponent(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	err := componentops.Delete(g, core.ComponentID(99))
	require.ErrorIs(t, err, core.ErrComponentNotFound)
}
