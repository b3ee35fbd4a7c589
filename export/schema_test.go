package export_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/export"
)

func TestValidateJSON_AcceptsGeneratedDocument(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.AddSingleChainComponent(2)
	g.Update()

	doc, err := export.JSON(g)
	require.NoError(t, err)
	require.NoError(t, export.ValidateJSON(doc))
}

func TestValidateJSON_RejectsMalformedDocument(t *testing.T) {
	t.Parallel()

	err := export.ValidateJSON([]byte(`{"vertices":"not-an-array","links":[]}`))
	require.ErrorIs(t, err, export.ErrSchemaCheck)
}

func TestValidateJSON_RejectsUnparsableInput(t *testing.T) {
	t.Parallel()

	err := export.ValidateJSON([]byte(`not json at all`))
	require.Error(t, err)
}
