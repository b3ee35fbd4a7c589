// File: chain.go
// Role: Chain — an ordered, branch-free sequence of edges with a
//       Neighborhood at each end, per §3/§4.2.
// Invariants upheld by this file alone (see §8 for the full list):
//   - Length >= 1; a cycle chain (both ends symmetrically connected to each
//     other and nothing else) requires length >= MinCycleLength.
//   - Edge.Indw is dense in [0, length) and matches the slice position.
// AI-HINT (file):
//   - Reverse() flips both edge order and each edge's orientation bit; it
//     does NOT touch neighborhoods — callers (graph.go, transforms) decide
//     whether neighbor-facing bookkeeping is needed around a reversal.
package core

// MinCycleLength is the minimum number of edges a cycle chain may have.
const MinCycleLength = 2

// Chain is an ordered sequence of edges with no internal branching.
type Chain struct {
	ID          ChainID
	CompLocalID ChainID
	ComponentID ComponentID
	Edges       []Edge
	Neighbors   [2]Neighborhood // indexed by End (A=0, B=1)
}

// Length returns the number of edges in the chain.
func (c *Chain) Length() int { return len(c.Edges) }

// Ngs returns the neighborhood at end.
func (c *Chain) Ngs(end End) *Neighborhood { return &c.Neighbors[end] }

// Renumber recomputes Indw for every edge to match slice position. Exported
// for transform packages that rearrange Edges directly (e.g. vertexsplit's
// cycle-rotation case).
func (c *Chain) Renumber() { c.renumber() }

// renumber recomputes Indw for every edge to match slice position.
func (c *Chain) renumber() {
	for i := range c.Edges {
		c.Edges[i].Indw = i
		c.Edges[i].W = c.ID
	}
}

// InsertEdge inserts e at chain-local position pos, shifting successors
// forward and renumbering. Fails with ErrPosOutOfRange if pos > length.
func (c *Chain) InsertEdge(e Edge, pos int) error {
	if pos > len(c.Edges) {
		return ErrPosOutOfRange
	}
	c.Edges = append(c.Edges, Edge{})
	copy(c.Edges[pos+1:], c.Edges[pos:])
	c.Edges[pos] = e
	c.renumber()

	return nil
}

// RemoveEdge erases the edge at chain-local position pos and renumbers.
// Fails with ErrPosOutOfRange if pos >= length.
func (c *Chain) RemoveEdge(pos int) (Edge, error) {
	if pos >= len(c.Edges) {
		return Edge{}, ErrPosOutOfRange
	}
	removed := c.Edges[pos]
	c.Edges = append(c.Edges[:pos], c.Edges[pos+1:]...)
	c.renumber()

	return removed, nil
}

// AppendEdge pushes e onto end B.
func (c *Chain) AppendEdge(e Edge) {
	_ = c.InsertEdge(e, len(c.Edges))
}

// PrependEdge pushes e onto end A.
func (c *Chain) PrependEdge(e Edge) {
	_ = c.InsertEdge(e, 0)
}

// Reverse reverses edge order and flips the orientation of every edge.
// Neighborhoods are left untouched; callers must swap Neighbors[A]/[B]
// themselves when a reversal also needs to flip which end faces which way,
// using Graph.CopyNeigs so that the far side's back-pointer moves too (a
// bare Neighbors[A]/[B] swap here has no way to reach those back-pointers).
func (c *Chain) Reverse() {
	n := len(c.Edges)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		c.Edges[i], c.Edges[j] = c.Edges[j], c.Edges[i]
	}
	for i := range c.Edges {
		c.Edges[i].Reversed = !c.Edges[i].Reversed
	}
	c.renumber()
}

// SetComponent assigns component id c, component-local chain id idc, and
// re-numbers component-local edge ids (Indc) starting from initIndc.
// Returns the next free component-local edge id.
func (c *Chain) SetComponent(comp ComponentID, idc ChainID, initIndc EdgeID) EdgeID {
	c.ComponentID = comp
	c.CompLocalID = idc
	next := initIndc
	for i := range c.Edges {
		c.Edges[i].C = comp
		c.Edges[i].Indc = next
		next++
	}

	return next
}

// EndEdge returns the boundary edge touching end, or false if the chain is empty.
func (c *Chain) EndEdge(end End) (Edge, bool) {
	if len(c.Edges) == 0 {
		return Edge{}, false
	}
	if end == A {
		return c.Edges[0], true
	}

	return c.Edges[len(c.Edges)-1], true
}

// End2A returns the chain-local position of the boundary edge at end: 0 for
// A, length-1 for B (the two coincide when length==1).
func (c *Chain) End2A(end End) int {
	if end == A {
		return 0
	}

	return len(c.Edges) - 1
}

// A2End returns the chain end whose boundary edge sits at position a, and
// false if a isn't a boundary position. A length-1 chain's single edge
// borders both ends at once, so a==0 is ambiguous there too; callers in
// that case must use Ind2End with an orientation hint instead.
func (c *Chain) A2End(a int) (End, bool) {
	n := len(c.Edges)
	if n == 0 || a < 0 || a >= n || n == 1 {
		return A, false
	}
	switch a {
	case 0:
		return A, true
	case n - 1:
		return B, true
	default:
		return A, false
	}
}

// Ind2End converts a graph-wide edge id to the chain end it borders. For a
// length-1 chain, the single edge borders both ends at once, so the result
// is disambiguated by hint: hint itself if the edge points forward (not
// Reversed), else hint's opposite. Returns false if ind doesn't name a
// boundary edge of this chain.
func (c *Chain) Ind2End(ind EdgeID, hint End) (End, bool) {
	n := len(c.Edges)
	if n == 0 {
		return A, false
	}
	if n == 1 {
		if c.Edges[0].Ind != ind {
			return A, false
		}
		if c.Edges[0].Reversed {
			return hint.Opp(), true
		}

		return hint, true
	}
	if c.Edges[0].Ind == ind {
		return A, true
	}
	if c.Edges[n-1].Ind == ind {
		return B, true
	}

	return A, false
}

// EgEndToBulkSlot converts a chain-local position in [0, length] to the slot
// it addresses: position 0 is end A, position length is end B, any position
// strictly in between is a bulk-slot at that position.
func (c *Chain) EgEndToBulkSlot(pos int) Slot {
	if pos == 0 {
		return EndSlot(c.ID, A)
	}
	if pos == len(c.Edges) {
		return EndSlot(c.ID, B)
	}

	return BulkSlot(c.ID, pos)
}

// HasSuchNeig reports whether end's neighborhood already lists slot s.
func (c *Chain) HasSuchNeig(end End, s Slot) bool {
	return c.Neighbors[end].Has(s)
}

// IsDisconnectedCycle reports whether A and B are connected only to each
// other and to nothing else (the chain's sole vertex has "degree 0" bucket
// per §3, standing in for an effective degree of 2).
func (c *Chain) IsDisconnectedCycle() bool {
	na, nb := &c.Neighbors[A], &c.Neighbors[B]
	if na.Num() != 1 || nb.Num() != 1 {
		return false
	}

	return na.Slots()[0] == EndSlot(c.ID, B) && nb.Slots()[0] == EndSlot(c.ID, A)
}

// IsConnectedCycle reports whether A and B are connected to each other
// (cross-linked) while also having at least one other neighbor on either end.
func (c *Chain) IsConnectedCycle() bool {
	na, nb := &c.Neighbors[A], &c.Neighbors[B]

	return na.Has(EndSlot(c.ID, B)) && nb.Has(EndSlot(c.ID, A)) && !c.IsDisconnectedCycle()
}

// IsCycle reports whether the chain is a cycle of either kind.
func (c *Chain) IsCycle() bool {
	return c.IsDisconnectedCycle() || c.IsConnectedCycle()
}

// IsShrinkable reports whether the chain can lose one edge and remain valid:
// length > 1 normally, or length > MinCycleLength for a cycle chain.
func (c *Chain) IsShrinkable() bool {
	if c.IsCycle() {
		return len(c.Edges) > MinCycleLength
	}

	return len(c.Edges) > 1
}

// Degree returns the vertex degree at end: 1 plus the neighbor count.
func (c *Chain) Degree(end End) int {
	return 1 + c.Neighbors[end].Num()
}

// NumVertices returns how many degree-d vertices this chain alone
// contributes. Aggregating across all chains in a graph double-counts
// degree-3 vertices 3x and degree-4 vertices 4x by construction (each such
// vertex is addressed from 3 or 4 distinct chain ends); callers performing
// a graph-wide tally must divide those buckets accordingly (§8).
func (c *Chain) NumVertices(d int) int {
	switch d {
	case 0:
		if c.IsDisconnectedCycle() {
			return 1
		}

		return 0
	case 1:
		n := 0
		for _, end := range []End{A, B} {
			if c.Neighbors[end].Num() == 0 {
				n++
			}
		}

		return n
	case 2:
		bulk := len(c.Edges) - 1
		if bulk < 0 {
			bulk = 0
		}

		return bulk
	case 3:
		n := 0
		for _, end := range []End{A, B} {
			if c.Neighbors[end].Num() == 2 {
				n++
			}
		}

		return n
	case 4:
		n := 0
		for _, end := range []End{A, B} {
			if c.Neighbors[end].Num() == 3 {
				n++
			}
		}

		return n
	default:
		return 0
	}
}
