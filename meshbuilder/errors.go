package meshbuilder

import "errors"

var (
	// ErrTooFewEdges indicates a requested size parameter (chain length,
	// spoke count or hub count) is below the constructor's minimum.
	ErrTooFewEdges = errors.New("meshbuilder: parameter too small")

	// ErrTooManySpokes indicates a requested hub fan-out exceeds core.MaxDegree.
	ErrTooManySpokes = errors.New("meshbuilder: spoke count exceeds max degree")

	// ErrConstructFailed indicates a nil Constructor was passed to BuildMesh.
	ErrConstructFailed = errors.New("meshbuilder: construction failed")
)
