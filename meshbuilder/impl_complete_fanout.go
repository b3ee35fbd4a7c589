// File: impl_complete_fanout.go
// Role: CompleteFanout(n) constructor — n independent hubs, each fanned out
// to core.MaxDegree, exercising the (1,2)/(1,3) merger family at its bound
// repeatedly without the bounded-degree invariant ever needing to reject a
// spoke.
package meshbuilder

import (
	"fmt"

	"github.com/chainmesh/chainmesh/core"
)

const minFanoutHubs = 1

// CompleteFanout returns a Constructor that builds n disjoint degree-4 hub
// components (each a Star(core.MaxDegree)) and returns the id of the last
// one built; the rest are reachable through g.Components like any other.
func CompleteFanout(n int) Constructor {
	return func(g *core.Graph, cfg meshConfig) (core.ComponentID, error) {
		if n < minFanoutHubs {
			return 0, fmt.Errorf("CompleteFanout: n=%d < min=%d: %w", n, minFanoutHubs, ErrTooFewEdges)
		}

		star := Star(core.MaxDegree)
		var last core.ComponentID
		for i := 0; i < n; i++ {
			id, err := star(g, cfg)
			if err != nil {
				return 0, fmt.Errorf("CompleteFanout: hub %d: %w", i, err)
			}
			last = id
		}

		return last, nil
	}
}
