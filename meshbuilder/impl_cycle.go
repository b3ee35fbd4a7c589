// File: impl_cycle.go
// Role: Cycle(n) constructor — a disconnected-cycle chain of n edges,
// closed at both ends onto itself (§3's 22 classification).
package meshbuilder

import (
	"fmt"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/junction"
)

const minCycleEdges = core.MinCycleLength

// Cycle returns a Constructor that builds an n-edge chain and closes it into
// a disconnected cycle via junction.ToCycle.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg meshConfig) (core.ComponentID, error) {
		if n < minCycleEdges {
			return 0, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleEdges, ErrTooFewEdges)
		}

		id := g.AddSingleChainComponent(n)
		comp, _ := g.ComponentByID(id)
		chainID := comp.ChainIDs[0]
		ch, _ := g.ChainByID(chainID)
		stampWeight(ch, cfg)

		return junction.ToCycle(g, chainID)
	}
}
