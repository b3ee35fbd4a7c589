// File: options.go
// Role: Functional options for Graph construction and edge creation — the
// one configuration idiom this module uses (no config files, no env vars;
// see SPEC_FULL.md's AMBIENT STACK).
package core

import "github.com/go-logr/logr"

// GraphOption customizes a Graph at construction time.
type GraphOption func(*Graph)

// WithLogger attaches a structured logger, reachable through Graph.Log().
// The transform packages do not write to it themselves. A Graph built
// without WithLogger uses logr.Discard().
func WithLogger(l logr.Logger) GraphOption {
	return func(g *Graph) {
		g.log = l
	}
}

// Recorder receives transform-level counters without this package importing
// any metrics backend itself; metrics.Recorder implements this interface
// against github.com/prometheus/client_golang.
type Recorder interface {
	// ObserveTransform is called once per top-level transform entry point,
	// named after the package/function that ran (e.g. "vertexmerger.MergeOneOne").
	ObserveTransform(name string)

	// ObservePullDistance is called once per pulling.PullD1/D2/D3 step with
	// the path length (in edges) that step's ripple crossed.
	ObservePullDistance(n int)

	// ObserveComponentCount is called after Update() with the graph's
	// current component count.
	ObserveComponentCount(n int)
}

type discardRecorder struct{}

func (discardRecorder) ObserveTransform(string)   {}
func (discardRecorder) ObservePullDistance(int)   {}
func (discardRecorder) ObserveComponentCount(int) {}

// WithRecorder attaches a metrics recorder. A Graph built without
// WithRecorder uses a no-op recorder.
func WithRecorder(r Recorder) GraphOption {
	return func(g *Graph) {
		g.rec = r
	}
}

// EdgeOption customizes a single Edge at creation time (edgeops.CreateInNewChain,
// edgeops.CreateInExistingChain).
type EdgeOption func(*Edge)

// WithWeight sets the edge's numeric weight. Edges default to weight 0.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) {
		e.Weight = w
	}
}

// WithReversed sets the edge's initial orientation bit.
func WithReversed(r bool) EdgeOption {
	return func(e *Edge) {
		e.Reversed = r
	}
}
