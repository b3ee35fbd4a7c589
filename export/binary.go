package export

import (
	"encoding/binary"
	"io"

	"github.com/google/uuid"

	"github.com/chainmesh/chainmesh/core"
)

// Writer accumulates a little-endian, append-able binary trace of a Graph's
// evolution: one call to Save per observed instant, a running high-water
// mark over the trailer counters, and a final zeroed trailer plus a
// session identifier written by Final.
type Writer struct {
	w         io.Writer
	sessionID uuid.UUID

	chainCountMax uint64
	maxNeighA     uint64
	maxNeighB     uint64
	steps         uint64
}

// NewWriter wraps w. sessionID tags every snapshot written through this
// Writer so a downstream reader can tell two appended runs apart.
func NewWriter(w io.Writer, sessionID uuid.UUID) *Writer {
	return &Writer{w: w, sessionID: sessionID}
}

// Save appends one snapshot of g at instant t and bumps the running trailer
// high-water marks. It never marks the trace as finished; call Final for
// the last snapshot of a run.
func (sw *Writer) Save(g *core.Graph, t float64) error {
	return sw.write(g, t, false)
}

// Final appends the closing snapshot of a run: the trailer counters and the
// step counter are written as zero, signalling a reader that no further
// snapshot follows in this session.
func (sw *Writer) Final(g *core.Graph, t float64) error {
	return sw.write(g, t, true)
}

func (sw *Writer) write(g *core.Graph, t float64, final bool) error {
	if g == nil {
		return ErrNilGraph
	}
	if sw.w == nil {
		return ErrNilWriter
	}

	bw := &binWriter{w: sw.w}

	bw.f64(t)
	bw.u64(uint64(len(g.Chains)))

	if uint64(len(g.Chains)) > sw.chainCountMax {
		sw.chainCountMax = uint64(len(g.Chains))
	}

	for _, ch := range g.Chains {
		bw.u64(uint64(ch.Length()))
		bw.u64(uint64(ch.ID))
		bw.u64(uint64(ch.CompLocalID))
		bw.u64(uint64(ch.ComponentID))

		for _, end := range []core.End{core.A, core.B} {
			slots := ch.Ngs(end).Slots()
			bw.u64(uint64(len(slots)))

			switch end {
			case core.A:
				if uint64(len(slots)) > sw.maxNeighA {
					sw.maxNeighA = uint64(len(slots))
				}
			case core.B:
				if uint64(len(slots)) > sw.maxNeighB {
					sw.maxNeighB = uint64(len(slots))
				}
			}

			for _, s := range slots {
				bw.u64(uint64(s.Chain))
				if s.Bulk {
					bw.u64(uint64(s.Pos))
				} else {
					bw.u64(uint64(s.End))
				}
			}
		}

		for _, e := range ch.Edges {
			bw.u64(uint64(e.Ind))
			bw.u64(uint64(e.Indc))
			bw.u64(uint64(e.Indw))
			bw.u64(uint64(e.W))
			bw.u64(uint64(e.C))
			bw.f32(float32(e.Weight))
		}

		bw.u64(dirFlag(ch, core.A))
		bw.u64(dirFlag(ch, core.B))
	}

	if final {
		bw.u64(0)
		bw.u64(0)
		bw.u64(0)
		bw.u64(0)
	} else {
		bw.u64(sw.chainCountMax)
		bw.u64(sw.maxNeighA)
		bw.u64(sw.maxNeighB)
		bw.u64(sw.steps)
	}

	bw.raw(sw.sessionID[:])

	sw.steps++

	return bw.err
}

// dirFlag reports whether the edge touching end is stored reversed, encoded
// as 0/1. It describes the chain's end-facing orientation, not any edge's
// individual Reversed bit beyond the one touching that end.
func dirFlag(ch *core.Chain, end core.End) uint64 {
	e, ok := ch.EndEdge(end)
	if !ok {
		return 0
	}
	if e.Reversed {
		return 1
	}

	return 0
}

// binWriter is a tiny little-endian field writer that latches the first
// error it sees so call sites can fire-and-forget a sequence of writes.
type binWriter struct {
	w   io.Writer
	err error
}

func (bw *binWriter) u64(v uint64) {
	if bw.err != nil {
		return
	}
	bw.err = binary.Write(bw.w, binary.LittleEndian, v)
}

func (bw *binWriter) f64(v float64) {
	if bw.err != nil {
		return
	}
	bw.err = binary.Write(bw.w, binary.LittleEndian, v)
}

func (bw *binWriter) f32(v float32) {
	if bw.err != nil {
		return
	}
	bw.err = binary.Write(bw.w, binary.LittleEndian, v)
}

func (bw *binWriter) raw(b []byte) {
	if bw.err != nil {
		return
	}
	_, bw.err = bw.w.Write(b)
}
