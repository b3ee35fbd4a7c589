package edgeops

import "errors"

// ErrUnsupportedDegree indicates the target slot's vertex degree has no
// matching merger/split variant for this operation.
var ErrUnsupportedDegree = errors.New("edgeops: unsupported target vertex degree")
