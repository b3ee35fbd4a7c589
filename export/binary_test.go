package export_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/export"
)

func TestWriter_SaveThenFinalProduceNonEmptyBytes(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.AddSingleChainComponent(2)
	g.Update()

	var buf bytes.Buffer
	w := export.NewWriter(&buf, uuid.New())

	require.NoError(t, w.Save(g, 0.0))
	mid := buf.Len()
	require.Greater(t, mid, 0)

	require.NoError(t, w.Final(g, 1.0))
	require.Greater(t, buf.Len(), mid)
}

func TestWriter_NilGraphRejected(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := export.NewWriter(&buf, uuid.New())
	err := w.Save(nil, 0)
	require.ErrorIs(t, err, export.ErrNilGraph)
}
