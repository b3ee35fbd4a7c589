// File: create.go
// Role: CreateInNewChain and CreateInExistingChain (§4.8).
package edgeops

import (
	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/vertexmerger"
)

// CreateInNewChain allocates a fresh length-1 component and vertex-merges
// its free end A onto slot, using the merger variant matching slot's current
// vertex degree (including the disconnected-cycle (1,0) case).
func CreateInNewChain(g *core.Graph, slot core.Slot, opts ...core.EdgeOption) ([]core.ComponentID, error) {
	g.Rec().ObserveTransform("edgeops.CreateInNewChain")

	newCompID := g.AddSingleChainComponent(1)
	newComp, _ := g.ComponentByID(newCompID)
	newChainID := newComp.ChainIDs[0]
	newChain, _ := g.ChainByID(newChainID)
	for _, opt := range opts {
		opt(&newChain.Edges[0])
	}
	free := core.EndSlot(newChainID, core.A)

	ch := g.ChainAt(slot)
	if ch.IsDisconnectedCycle() && slot.IsEnd() {
		return vertexmerger.MergeOneZero(g, free, slot.Chain)
	}

	degree := 2
	if slot.IsEnd() {
		degree = ch.Degree(slot.End)
	}

	switch degree {
	case 1:
		return vertexmerger.MergeOneOne(g, free, slot)
	case 2:
		return vertexmerger.MergeOneTwo(g, free, slot)
	case 3:
		return vertexmerger.MergeOneThree(g, free, slot)
	default:
		return nil, ErrUnsupportedDegree
	}
}

// CreateInExistingChain inserts a brand-new edge into slot's host chain at
// the chain-local position slot addresses (0 for end A, length for end B,
// slot.Pos for a bulk slot), re-numbering the chain and refreshing indices.
func CreateInExistingChain(g *core.Graph, slot core.Slot, opts ...core.EdgeOption) (core.EdgeID, error) {
	g.Rec().ObserveTransform("edgeops.CreateInExistingChain")

	ch := g.ChainAt(slot)
	e := core.Edge{Ind: g.NextGlobalEdgeID()}
	for _, opt := range opts {
		opt(&e)
	}

	pos := slot.Pos
	if slot.IsEnd() {
		if slot.End == core.A {
			pos = 0
		} else {
			pos = ch.Length()
		}
	}

	if err := ch.InsertEdge(e, pos); err != nil {
		return 0, err
	}
	g.Update()

	return e.Ind, nil
}
