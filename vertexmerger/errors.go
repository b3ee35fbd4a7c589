package vertexmerger

import "errors"

// ErrSlotNotFree indicates a merger variant was given a slot whose vertex
// already has the wrong degree for that variant (e.g. MergeOneTwo's first
// argument must be a free end).
var ErrSlotNotFree = errors.New("vertexmerger: slot is not free")

// ErrNotBulkSlot indicates MergeOneTwo's target must be a true bulk position.
var ErrNotBulkSlot = errors.New("vertexmerger: target is not a bulk slot")

// ErrWrongNeighborCount indicates MergeOneThree's target end-slot does not
// already have exactly two neighbors.
var ErrWrongNeighborCount = errors.New("vertexmerger: target end-slot has unexpected neighbor count")
