// File: api.go
// Role: Constructor type and the single BuildMesh orchestrator.
package meshbuilder

import (
	"fmt"

	"github.com/chainmesh/chainmesh/core"
)

// Constructor applies a deterministic mesh mutation to g, configured by the
// resolved meshConfig, and returns the id of the component it principally
// built.
type Constructor func(g *core.Graph, cfg meshConfig) (core.ComponentID, error)

// BuildMesh creates a new core.Graph with graph options gopts, resolves the
// mesh configuration from mopts, and applies every constructor in order,
// returning the graph plus one component id per constructor (in call
// order). A nil constructor is rejected immediately; any constructor error
// is wrapped with its index and returned without attempting the rest.
func BuildMesh(gopts []core.GraphOption, mopts []MeshOption, cons ...Constructor) (*core.Graph, []core.ComponentID, error) {
	g := core.NewGraph(gopts...)
	cfg := newMeshConfig(mopts...)

	ids := make([]core.ComponentID, 0, len(cons))
	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		id, err := fn(g, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("BuildMesh: constructor %d: %w", i, err)
		}
		ids = append(ids, id)
	}

	return g, ids, nil
}

// stampWeight applies cfg's configured default weight to every edge of ch.
func stampWeight(ch *core.Chain, cfg meshConfig) {
	if cfg.weight == 0 {
		return
	}
	for i := range ch.Edges {
		ch.Edges[i].Weight = cfg.weight
	}
}
