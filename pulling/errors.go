package pulling

import "errors"

var (
	// ErrNotFreeEnd indicates the driver slot passed to pullFreeEnd is not an
	// actual free end (degree 1).
	ErrNotFreeEnd = errors.New("pulling: driver slot is not a free end")

	// ErrSourceNotDisconnected indicates the source slot passed to
	// pullFreeEnd is a bulk slot rather than an end-slot. The source end's
	// neighborhood is not inspected, so a source end that still has
	// neighbors is not rejected.
	ErrSourceNotDisconnected = errors.New("pulling: source slot is not disconnected")

	// ErrEmptyPath indicates pathedge.ShortestPath returned fewer than one
	// edge, which cannot happen for a well-formed driver/source pair.
	ErrEmptyPath = errors.New("pulling: path has no edges")

	ErrUnsupportedDriverDegree = errors.New("pulling: driver degree must be 1, 2 or 3")
)
