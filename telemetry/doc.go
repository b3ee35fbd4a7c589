// Package telemetry provides Trace, which runs one call inside an otel span
// tagged with the component and chain ids the call touches. The transform
// packages do not call it themselves; a call site opts in by wrapping a
// transform call (merger, split, edge, component, pulling) in Trace.
package telemetry
