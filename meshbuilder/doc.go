// Package meshbuilder provides a single orchestrator, BuildMesh, and a set
// of named topology constructors (Path, Cycle, Star, CompleteFanout) that
// compose the core/junction/vertexmerger primitives into ready-made fixtures, mirroring the one-orchestrator,
// many-Constructor shape of the graph builder this package generalizes.
package meshbuilder
