package vertexsplit

import "errors"

// ErrNotBulk indicates a slot of the wrong kind for the variant: ToOneOne was
// given an end-slot on a non-cycle chain, where a true bulk position is
// required, or ToOneDMinus1/ToOneThree was given a bulk slot, where an
// end-slot is required.
var ErrNotBulk = errors.New("vertexsplit: slot is of the wrong kind (bulk vs end) for this split")

// ErrWrongDegree indicates the target slot's neighbor count does not match
// the variant being applied (e.g. ToOneDMinus1 called on a degree-4 end).
var ErrWrongDegree = errors.New("vertexsplit: slot has unexpected neighbor count")

// ErrNeedTwoSlots indicates a (2,2)/(2,0)/(0,0) split was not given the two
// end-slots selecting which edges stay together.
var ErrNeedTwoSlots = errors.New("vertexsplit: degree-4 split requires two end-slots")
