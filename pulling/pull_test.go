package pulling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/pulling"
)

// twoChainComponent builds one component of two chains, w0 (length 1) linked
// end B to w1 (length 2) end A, leaving w0's A and w1's B free.
func twoChainComponent(g *core.Graph) (w0, w1 core.ChainID, compID core.ComponentID) {
	c0 := g.AddSingleChainComponent(1)
	c1 := g.AddSingleChainComponent(2)
	comp0, _ := g.ComponentByID(c0)
	comp1, _ := g.ComponentByID(c1)
	w0, w1 = comp0.ChainIDs[0], comp1.ChainIDs[0]

	ch0, _ := g.ChainByID(w0)
	ch1, _ := g.ChainByID(w1)
	ch0.Ngs(core.B).Insert(core.EndSlot(w1, core.A))
	ch1.Ngs(core.A).Insert(core.EndSlot(w0, core.B))

	g.MergeComponents(c0, c1)
	g.Update()

	comp0, _ = g.ComponentByID(c0)

	return w0, w1, comp0.ID
}

func TestPullD1_OneStepRipplesEdgeAcrossBoundary(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	w0, w1, compID := twoChainComponent(g)

	driver := core.EndSlot(w0, core.A)
	source := core.EndSlot(w1, core.B)

	totalBefore := g.EdgeNum

	newDriver, _, err := pulling.PullD1(g, compID, driver, source, 1)
	require.NoError(t, err)
	require.Equal(t, driver, newDriver)
	require.Equal(t, totalBefore, g.EdgeNum)
}

func TestPullD1_RejectsOccupiedDriver(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	w0, w1, compID := twoChainComponent(g)

	driver := core.EndSlot(w0, core.B) // occupied, not a free end
	source := core.EndSlot(w1, core.B)

	_, _, err := pulling.PullD1(g, compID, driver, source, 1)
	require.ErrorIs(t, err, pulling.ErrNotFreeEnd)
}
