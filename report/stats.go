package report

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/chainmesh/chainmesh/core"
)

// Stats renders st as a locale-aware, fixed-width summary table: chain and
// component counts, total live edges, and the vertex-count histogram by
// degree. tag selects the locale (language.Und falls back to the printer's
// default grouping/digit rules).
func Stats(st core.GraphStats, tag language.Tag) string {
	p := message.NewPrinter(tag)

	var b strings.Builder
	p.Fprintf(&b, "chains:     %v\n", number.Decimal(st.ChainCount))
	p.Fprintf(&b, "components: %v\n", number.Decimal(st.ComponentCount))
	p.Fprintf(&b, "edges:      %v\n", number.Decimal(st.EdgeCount))
	b.WriteString("vertices by degree:\n")
	for d, n := range st.VertexCount {
		p.Fprintf(&b, "  degree %d: %v\n", d, number.Decimal(n))
	}

	return b.String()
}
