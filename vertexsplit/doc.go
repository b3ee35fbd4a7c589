// Package vertexsplit implements the dual of vertexmerger: splitting one
// vertex into two lower-degree vertices. Four variants are provided — to
// (1,1) at a bulk slot or a disconnected-cycle end, to (1, D-1) and to (1,3)
// at an end-slot with D-1 existing neighbors, and to (2,2)/(2,0)/(0,0) at a
// degree-4 junction addressed by a pair of end-slots.
package vertexsplit
