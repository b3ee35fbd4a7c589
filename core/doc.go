// Package core defines the chain-centric in-memory representation of an
// undirected multigraph with vertices bounded at degree MaxDegree, and the
// primitives that keep its three parallel index spaces — graph-wide,
// component-wide, and chain-local — consistent.
//
// A Chain is a branch-free run of Edges; a Neighborhood at each chain end
// records the (at most MaxDegree-1) other chain ends that meet there,
// encoding junction vertices without ever materialising a Vertex object. A
// Component is a maximal set of chains reachable through neighborhoods, and
// Graph is the aggregate owner of every chain and component (§9: arena-plus-
// index, no back-pointers — every cross-reference is a dense integer id).
//
// This package implements exactly the data model and its structural
// contract (insert/remove/reverse, component membership, classification,
// and the vertex view). The two path engines live in the sibling packages
// pathedge and pathslot, and the higher-level mutation algebra — vertex
// merger, vertex split, edge/component create/delete, and pulling — lives in
// the sibling transform packages that compose these primitives.
//
// Concurrency: none. A Graph has no internal locking; callers needing
// concurrent mutation must wrap it in an external exclusive lock (§5).
package core
