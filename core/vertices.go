// File: vertices.go
// Role: VerticesView — on-demand reconstruction of vertex objects from chain
//       data, per §3/§4.5 component #6.
// AI-HINT (file):
//   - A vertex is never materialised eagerly as a standalone struct with its
//     own lifetime; it is always recomputed from Neighborhood data. This view
//     is rebuilt wholesale by Graph.UpdateBooks() after every transform.
package core

// VertexRef describes one reconstructed vertex: its degree and the full set
// of slots that address it (symmetric under the group mentioned in §3 — two
// VertexRefs are logically "the same vertex" iff their Slots sets are equal).
type VertexRef struct {
	Degree int
	Slots  []Slot
}

// VerticesView groups reconstructed vertices by degree.
type VerticesView struct {
	byDegree map[int][]VertexRef
}

// newVerticesView rebuilds the entire view from g's current chains.
func newVerticesView(g *Graph) *VerticesView {
	v := &VerticesView{byDegree: make(map[int][]VertexRef, 5)}
	visited := make(map[Slot]bool)

	for _, ch := range g.Chains {
		for pos := 1; pos < ch.Length(); pos++ {
			v.byDegree[2] = append(v.byDegree[2], VertexRef{Degree: 2, Slots: []Slot{BulkSlot(ch.ID, pos)}})
		}

		if ch.IsDisconnectedCycle() {
			v.byDegree[0] = append(v.byDegree[0], VertexRef{
				Degree: 0,
				Slots:  []Slot{EndSlot(ch.ID, A), EndSlot(ch.ID, B)},
			})

			continue
		}

		for _, end := range []End{A, B} {
			s := EndSlot(ch.ID, end)
			if visited[s] {
				continue
			}
			visited[s] = true

			deg := ch.Degree(end)
			if deg == 1 {
				v.byDegree[1] = append(v.byDegree[1], VertexRef{Degree: 1, Slots: []Slot{s}})

				continue
			}

			clique := make([]Slot, 0, deg)
			clique = append(clique, s)
			for _, nb := range ch.Ngs(end).Slots() {
				visited[nb] = true
				clique = append(clique, nb)
			}
			v.byDegree[deg] = append(v.byDegree[deg], VertexRef{Degree: deg, Slots: clique})
		}
	}

	return v
}

// Count returns the number of distinct degree-d vertices.
func (v *VerticesView) Count(d int) int { return len(v.byDegree[d]) }

// List returns every degree-d vertex reference. Callers must treat the
// result as read-only.
func (v *VerticesView) List(d int) []VertexRef { return v.byDegree[d] }

// Total returns the total vertex count across every supported degree.
func (v *VerticesView) Total() int {
	n := 0
	for d := 0; d <= MaxDegree; d++ {
		n += v.Count(d)
	}

	return n
}
