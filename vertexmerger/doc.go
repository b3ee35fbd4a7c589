// Package vertexmerger implements the seven vertex-merger variants of §4.6:
// merging two source slots into one output vertex of higher degree. (1,1)
// dispatches straight to the junction primitives; (1,2), (1,3), (2,2),
// (2,0), (0,0) and (1,0) first prepare one or both sides (splitting a bulk
// slot into free ends, or reading an existing junction's neighbor list) and
// then wire the resulting free ends into a symmetric neighborhood.
package vertexmerger
