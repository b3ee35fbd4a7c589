package export

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/chainmesh/chainmesh/core"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonVertex mirrors one entry of the "vertices" array: d is the vertex's
// degree, ind its dense id in [0, V) across every degree class, w/e the
// parallel chain-id/end-or-position arrays describing its incident slots.
type jsonVertex struct {
	D   int   `json:"d"`
	Ind int   `json:"ind"`
	W   []int `json:"w"`
	E   []int `json:"e"`
}

// jsonLink mirrors one entry of the "links" array, in edge-insertion
// (graph-wide Ind) order.
type jsonLink struct {
	SourceID int `json:"source_id"`
	TargetID int `json:"target_id"`
}

type jsonDocument struct {
	Vertices []jsonVertex `json:"vertices"`
	Links    []jsonLink   `json:"links"`
}

// JSON renders g as the {"vertices":...,"links":...} document: vertices
// numbered densely across degree classes 0..core.MaxDegree in the order
// core.VerticesView lists them, links in graph-wide edge-id order with each
// endpoint resolved back to its owning vertex id.
func JSON(g *core.Graph) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	doc := jsonDocument{}
	slotVertex := make(map[core.Slot]int)

	vid := 0
	for d := 0; d <= core.MaxDegree; d++ {
		for _, ref := range g.Vertices.List(d) {
			jv := jsonVertex{D: ref.Degree, Ind: vid}
			for _, s := range ref.Slots {
				slotVertex[s] = vid
				jv.W = append(jv.W, int(s.Chain))
				if s.Bulk {
					jv.E = append(jv.E, s.Pos)
				} else {
					jv.E = append(jv.E, int(s.End))
				}
			}
			doc.Vertices = append(doc.Vertices, jv)
			vid++
		}
	}

	for ind := range g.GLM {
		e, ok := g.EdgeAt(core.EdgeID(ind))
		if !ok || e.Ind != core.EdgeID(ind) {
			continue
		}
		ch := g.Chains[g.GLM[ind]]
		srcSlot := ch.EgEndToBulkSlot(e.Indw)
		dstSlot := ch.EgEndToBulkSlot(e.Indw + 1)
		src, srcOK := slotVertex[srcSlot]
		dst, dstOK := slotVertex[dstSlot]
		if !srcOK || !dstOK {
			continue
		}
		doc.Links = append(doc.Links, jsonLink{SourceID: src, TargetID: dst})
	}

	return jsonAPI.Marshal(doc)
}
