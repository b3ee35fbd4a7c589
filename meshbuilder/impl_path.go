// File: impl_path.go
// Role: Path(n) constructor — a single linear chain of n edges, both ends
// free.
package meshbuilder

import (
	"fmt"

	"github.com/chainmesh/chainmesh/core"
)

const minPathEdges = 1

// Path returns a Constructor that builds a single disconnected linear chain
// of n edges as its own component.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg meshConfig) (core.ComponentID, error) {
		if n < minPathEdges {
			return 0, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathEdges, ErrTooFewEdges)
		}

		id := g.AddSingleChainComponent(n)
		comp, _ := g.ComponentByID(id)
		ch, _ := g.ChainByID(comp.ChainIDs[0])
		stampWeight(ch, cfg)

		return id, nil
	}
}
