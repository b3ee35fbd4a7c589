// Package pathslot implements a breadth-first-search-over-end-slots engine:
// BFS explores the "meta-graph" whose nodes are chain ends and whose edges
// are (a) the two ends of the same chain and (b) neighborhood links between
// chain ends, restricted to a single component. No other package of this
// module calls it; core's component splitting and cut-point detection use
// their own reachability flood fill.
package pathslot

import (
	"errors"

	"github.com/chainmesh/chainmesh/core"
)

// ErrNilGraph indicates a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("pathslot: graph is nil")

// ErrBadComponent indicates the component id is out of range.
var ErrBadComponent = errors.New("pathslot: component id out of range")

// ErrUnreachable indicates no path exists between start and target.
var ErrUnreachable = errors.New("pathslot: target unreachable from start")

// Result holds the outcome of a BFS run: visitation order, parent links for
// path reconstruction, and depth from the source.
type Result struct {
	Order  []core.Slot
	Parent map[core.Slot]core.Slot
	Depth  map[core.Slot]int
}

// Visited reports whether slot s was reached.
func (r *Result) Visited(s core.Slot) bool {
	_, ok := r.Depth[s]

	return ok
}
