// File: impl_star.go
// Role: Star(n) constructor — a single hub vertex of degree n (3 or 4,
// core.MaxDegree bounds the fan-out) with n pendant spokes.
package meshbuilder

import (
	"fmt"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/junction"
	"github.com/chainmesh/chainmesh/vertexmerger"
)

const minStarSpokes = 3

// Star returns a Constructor that builds a hub of degree n (3 <= n <=
// core.MaxDegree) with n single-edge pendant spokes. The first two spokes
// are concatenated into one two-edge chain via junction.Antiparallel (the
// hub is then the bulk slot at that chain's midpoint); each further spoke is
// wired onto the hub via vertexmerger's (1,2) split-and-mesh or (1,3)
// direct-mesh variant, using the previous spoke's own free end as the next
// call's target — once meshed in, that end-slot is a valid member of the
// junction for as long as the junction exists.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg meshConfig) (core.ComponentID, error) {
		if n < minStarSpokes {
			return 0, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarSpokes, ErrTooFewEdges)
		}
		if n > core.MaxDegree {
			return 0, fmt.Errorf("Star: n=%d > max=%d: %w", n, core.MaxDegree, ErrTooManySpokes)
		}

		c0 := g.AddSingleChainComponent(1)
		comp0, _ := g.ComponentByID(c0)
		chain0 := comp0.ChainIDs[0]
		ch0, _ := g.ChainByID(chain0)
		stampWeight(ch0, cfg)

		c1 := g.AddSingleChainComponent(1)
		comp1, _ := g.ComponentByID(c1)
		chain1 := comp1.ChainIDs[0]
		ch1, _ := g.ChainByID(chain1)
		stampWeight(ch1, cfg)

		if _, _, err := junction.Antiparallel(g, core.A, chain0, chain1); err != nil {
			return 0, fmt.Errorf("Star: %w", err)
		}
		mergedChain, _ := g.ChainByID(chain0)
		compID := mergedChain.ComponentID

		hub := core.BulkSlot(chain0, 1)

		for i := 2; i < n; i++ {
			ci := g.AddSingleChainComponent(1)
			compi, _ := g.ComponentByID(ci)
			spokeChain := compi.ChainIDs[0]
			chI, _ := g.ChainByID(spokeChain)
			stampWeight(chI, cfg)
			free := core.EndSlot(spokeChain, core.A)

			var (
				comps []core.ComponentID
				err   error
			)
			if i == 2 {
				comps, err = vertexmerger.MergeOneTwo(g, free, hub)
			} else {
				comps, err = vertexmerger.MergeOneThree(g, free, hub)
			}
			if err != nil {
				return 0, fmt.Errorf("Star: spoke %d: %w", i, err)
			}

			compID = comps[0]
			hub = free
		}

		return compID, nil
	}
}
