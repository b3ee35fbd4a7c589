// File: config.go
// Role: functional options for the constructors in this package, mirroring
// the builder package's BuilderOption/builderConfig shape but reduced to
// this domain's one configurable knob: a default edge weight.
package meshbuilder

// MeshOption customizes a Constructor's behavior by mutating a meshConfig
// before any chain is built.
type MeshOption func(cfg *meshConfig)

type meshConfig struct {
	weight float64
}

// WithDefaultWeight sets the weight stamped onto every edge a constructor
// creates. Zero (the default) matches core's own zero-value Edge.Weight.
func WithDefaultWeight(w float64) MeshOption {
	return func(cfg *meshConfig) { cfg.weight = w }
}

func newMeshConfig(opts ...MeshOption) meshConfig {
	var cfg meshConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
