// Package pulling implements the pulling transform (§4.10): it slides a
// boundary edge along a path from a disconnected source end-slot toward a
// growing driver end-slot, step by step, composing splits, merges and
// Component.ShiftLastEdge into one synchronous, indivisible move.
//
// Design principles:
//   - The path is always recomputed fresh from pathedge.ShortestPath before
//     each step, since a step may rename chains; no stale edge ids are
//     carried across steps.
//   - Three entry points, one per starting driver degree: PullD1, PullD2 and
//     PullD3. All three bottom out in pullFreeEnd, the single-step primitive
//     for a driver already at degree 1 (a free end).
package pulling
