// Package chainmesh is your in-memory playground for building, transforming,
// and exporting chain-and-junction meshes in Go.
//
// 🚀 What is chainmesh?
//
//	A dense-index-owning, arena-style library that brings together:
//
//	  • Core primitives: chains, neighborhoods, components — no standalone
//	    Vertex object; every junction is reconstructed on demand
//	  • Vertex-local transforms: mergers and splits across every degree the
//	    mesh supports, plus edge- and component-level create/delete
//	  • Pulling: re-routing a driver end toward a source end one step at a
//	    time, re-expressing slots over whatever chain ids the step left behind
//	  • Export: an append-able binary snapshot trace and a
//	    schema-checkable JSON vertices/links document
//
// ✨ Why choose chainmesh?
//
//   - Dense by construction — chain, component and edge ids stay packed
//     into [0, n); deletions compact rather than leave holes
//   - Friend-access, not public mutation — transform packages reach into
//     Graph through a narrow, documented internal surface
//   - Extensible — WithLogger/WithRecorder attach structured logging and
//     metrics at Graph construction, no process-wide globals
//
// Under the hood, everything is organized under several subpackages:
//
//	core/         — Graph, Chain, Component, Neighborhood, Slot addressing
//	junction/     — shared low-level fuse/split primitives (Antiparallel,
//	                Parallel, ToCycle)
//	vertexmerger/ — the seven vertex-merger variants
//	vertexsplit/  — the vertex-split family, including bulk-slot cuts
//	edgeops/      — single-edge create/delete
//	componentops/ — whole-component create/delete
//	pulling/      — driver-toward-source re-routing, one step at a time
//	pathedge/     — Dijkstra over a component's edge adjacency
//	pathslot/     — BFS over a component's slot adjacency
//	meshbuilder/  — path/cycle/star/fanout mesh constructors
//	export/       — binary snapshot and JSON document writers
//	metrics/      — Prometheus recorder implementing core.Recorder
//	telemetry/    — otel span wrapper for transform call sites
//	report/       — locale-aware GraphStats rendering
//
// Quick ASCII example — a length-2 chain closed into a cycle by a single
// junction fuse:
//
//	    A━━●━━B          A━━●━━━━●━━B
//	  chain, open          after junction.ToCycle: both ends now neighbor
//	                       each other (IsDisconnectedCycle)
//
// Dive into SPEC_FULL.md and DESIGN.md for the full module map and the
// grounding behind every package.
package chainmesh
