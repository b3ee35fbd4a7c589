// File: pull.go
// Role: pullFreeEnd (the D=1 single-step primitive) and PullD1/PullD2/PullD3,
// the three driver-degree entry points of §4.10.
package pulling

import (
	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/pathedge"
	"github.com/chainmesh/chainmesh/vertexmerger"
	"github.com/chainmesh/chainmesh/vertexsplit"
)

// PullD1 pulls a driver already at a free end (degree 1) n steps toward
// source, calling pullFreeEnd once per step and re-expressing driver/source
// over whatever chain ids the previous step left behind.
func PullD1(g *core.Graph, compID core.ComponentID, driver, source core.Slot, n int) (core.Slot, core.Slot, error) {
	g.Rec().ObserveTransform("pulling.PullD1")
	var err error
	for i := 0; i < n; i++ {
		driver, source, err = pullFreeEnd(g, compID, driver, source)
		if err != nil {
			return driver, source, err
		}
	}

	return driver, source, nil
}

// PullD2 pulls a driver sitting at a degree-2 junction (one literal
// neighbor) n steps toward source. Path length 1 is the no-op-but-orientation
// special case: the driver edge is simply reversed in place. Otherwise each
// step detaches the junction into two free ends (the (1,1) split), pulls the
// driver half one step via pullFreeEnd, then re-fuses the pulled end against
// the other detached end (a (1,1) merge), recreating a degree-2 junction one
// edge further along the path.
func PullD2(g *core.Graph, compID core.ComponentID, driver, source core.Slot, n int) (core.Slot, core.Slot, error) {
	g.Rec().ObserveTransform("pulling.PullD2")
	dch := g.ChainAt(driver)
	if dch.Ngs(driver.End).Num() != 1 {
		return driver, source, ErrUnsupportedDriverDegree
	}

	driverEdge, ok := dch.EndEdge(driver.End)
	if !ok {
		return driver, source, core.ErrEdgeNotFound
	}
	sourceEdge, ok := g.ChainAt(source).EndEdge(source.End)
	if !ok {
		return driver, source, core.ErrEdgeNotFound
	}
	path, err := pathedge.ShortestPath(g, compID, driverEdge.Ind, sourceEdge.Ind)
	if err != nil {
		return driver, source, err
	}
	if len(path) == 1 {
		dch.Reverse()
		g.Update()

		return driver, source, nil
	}

	for i := 0; i < n; i++ {
		dch = g.ChainAt(driver)
		other := dch.Ngs(driver.End).Front()

		comp, _, err := vertexsplit.ToOneDMinus1(g, driver)
		if err != nil {
			return driver, source, err
		}

		driver, source, err = pullFreeEnd(g, comp, driver, source)
		if err != nil {
			return driver, source, err
		}

		comps, err := vertexmerger.MergeOneOne(g, driver, other)
		if err != nil {
			return driver, source, err
		}
		compID = comps[0]
		driver = other
	}

	return driver, source, nil
}

// PullD3 pulls a driver sitting at a degree-3 junction n steps toward source:
// each step disconnects the driver via the (1,2) split (or the (1,0)
// variant, when the remaining two ends already belong to one connected
// cycle — vertexsplit.ToOneDMinus1 dispatches this internally), pulls the
// driver half one step, then re-merges the freed neighbor pair back into a
// degree-3 junction via the (2,0)/(2,2) family.
func PullD3(g *core.Graph, compID core.ComponentID, driver, source core.Slot, n int) (core.Slot, core.Slot, error) {
	g.Rec().ObserveTransform("pulling.PullD3")
	dch := g.ChainAt(driver)
	if dch.Ngs(driver.End).Num() != 2 {
		return driver, source, ErrUnsupportedDriverDegree
	}

	for i := 0; i < n; i++ {
		dch = g.ChainAt(driver)
		others := append([]core.Slot{}, dch.Ngs(driver.End).Slots()...)
		n1, n2 := others[0], others[1]

		comp, _, err := vertexsplit.ToOneDMinus1(g, driver)
		if err != nil {
			return driver, source, err
		}

		driver, source, err = pullFreeEnd(g, comp, driver, source)
		if err != nil {
			return driver, source, err
		}

		comps, err := vertexmerger.MergeTwoTwo(g, n1, n2)
		if err != nil {
			return driver, source, err
		}
		compID = comps[0]
	}

	return driver, source, nil
}

// pullFreeEnd performs one D=1 pull step: it recomputes the path from
// driver's boundary edge to source's boundary edge, ripples a single edge
// along every chain boundary the path crosses (Component.ShiftLastEdge),
// and, if the source chain thereby emptied (the length-1 source case),
// dissolves it and relocates the source slot to the chain that absorbed it.
func pullFreeEnd(g *core.Graph, compID core.ComponentID, driver, source core.Slot) (core.Slot, core.Slot, error) {
	comp, ok := g.ComponentByID(compID)
	if !ok {
		return driver, source, core.ErrComponentNotFound
	}
	driverChain := g.ChainAt(driver)
	if driverChain.Ngs(driver.End).Num() != 0 {
		return driver, source, ErrNotFreeEnd
	}
	sourceChain := g.ChainAt(source)
	if !source.IsEnd() {
		return driver, source, ErrSourceNotDisconnected
	}

	driverEdge, ok := driverChain.EndEdge(driver.End)
	if !ok {
		return driver, source, core.ErrEdgeNotFound
	}
	sourceEdge, ok := sourceChain.EndEdge(source.End)
	if !ok {
		return driver, source, core.ErrEdgeNotFound
	}

	path, err := pathedge.ShortestPath(g, compID, driverEdge.Ind, sourceEdge.Ind)
	if err != nil {
		return driver, source, err
	}
	if len(path) == 0 {
		return driver, source, ErrEmptyPath
	}
	if len(path) == 1 {
		return driver, source, nil
	}
	g.Rec().ObservePullDistance(len(path) - 1)

	sourceChainID := sourceChain.ID
	newSource := source
	for i := len(path) - 1; i > 0; i-- {
		curEdge, ok := g.EdgeAt(path[i])
		if !ok {
			return driver, source, core.ErrEdgeNotFound
		}
		prevEdge, ok := g.EdgeAt(path[i-1])
		if !ok {
			return driver, source, core.ErrEdgeNotFound
		}
		if curEdge.W == prevEdge.W {
			continue
		}

		endCur, endPrev, found := findJunction(g, curEdge.W, prevEdge.W)
		if !found {
			return driver, source, ErrEmptyPath
		}
		from := core.EndSlot(curEdge.W, endCur)
		to := core.EndSlot(prevEdge.W, endPrev)
		if err := comp.ShiftLastEdge(g, from, to); err != nil {
			return driver, source, err
		}
		if i == len(path)-1 {
			newSource = to
		}
	}

	if sourceChain.Length() == 0 {
		dissolveEmptyChain(g, compID, sourceChainID)
	} else {
		newSource = source
	}
	g.Update()

	return driver, newSource, nil
}

// findJunction returns the end of chain a and the end of chain b that
// neighbor each other, or found=false if they are not directly linked.
func findJunction(g *core.Graph, a, b core.ChainID) (endA, endB core.End, found bool) {
	chA, ok := g.ChainByID(a)
	if !ok {
		return 0, 0, false
	}
	for _, end := range []core.End{core.A, core.B} {
		for _, s := range chA.Ngs(end).Slots() {
			if s.Chain == b {
				return end, s.End, true
			}
		}
	}

	return 0, 0, false
}

// dissolveEmptyChain removes a chain that pullFreeEnd has shrunk to zero
// edges from both its component and the graph's dense chain storage,
// compacting by renaming the graph's last chain into the vacated id.
func dissolveEmptyChain(g *core.Graph, compID core.ComponentID, chainID core.ChainID) {
	comp, ok := g.ComponentByID(compID)
	if !ok {
		return
	}
	comp.Remove(chainID)

	last := g.LastChainID()
	if chainID != last {
		g.RenameChain(last, chainID)
	}
	g.PopLastChain()

	comp.RebuildIndices(g)
}
