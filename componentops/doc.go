// Package componentops implements whole-component lifecycle operations
// (§4.9): Create installs a fresh single-chain component, Delete tears one
// down entirely, peeling its chains, popping their edges, and compacting
// every dense id the deletion vacates.
package componentops
