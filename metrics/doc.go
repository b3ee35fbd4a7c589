// Package metrics implements core.Recorder against
// github.com/prometheus/client_golang: a transform-invocation counter, a
// pulling-step-distance histogram, and a component-count gauge.
package metrics
