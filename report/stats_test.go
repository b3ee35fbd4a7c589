package report_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/report"
)

func TestStats_FormatsCountsUnderDefaultLocale(t *testing.T) {
	t.Parallel()

	st := core.GraphStats{ChainCount: 2, ComponentCount: 1, EdgeCount: 3}
	st.VertexCount[1] = 2
	st.VertexCount[2] = 1

	out := report.Stats(st, language.English)
	require.Contains(t, out, "chains:")
	require.Contains(t, out, "2")
	require.Contains(t, out, "components:")
	require.Contains(t, out, "edges:")
	require.Contains(t, out, "degree 1:")
}

func TestStats_LargeCountsGroupUnderEnglishLocale(t *testing.T) {
	t.Parallel()

	st := core.GraphStats{ChainCount: 1234567, ComponentCount: 1, EdgeCount: 0}

	out := report.Stats(st, language.English)
	require.Contains(t, out, "1,234,567")
}
