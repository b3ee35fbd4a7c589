package junction

import "errors"

// ErrSameChain indicates antiparallel/parallel was asked to join a chain end
// to itself; ToCycle exists for exactly this case.
var ErrSameChain = errors.New("junction: w1 == w2, use ToCycle instead")

// ErrEndOccupied indicates the end slot involved in the join already has a
// neighbor.
var ErrEndOccupied = errors.New("junction: end is not free")

// ErrEmptyChain indicates a zero-length chain was passed to a primitive that
// requires at least one edge.
var ErrEmptyChain = errors.New("junction: chain has no edges")

// ErrAlreadyCycle indicates ToCycle was asked to close a chain that is
// already a disconnected cycle.
var ErrAlreadyCycle = errors.New("junction: chain is already a disconnected cycle")
