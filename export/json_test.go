package export_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/core"
	"github.com/chainmesh/chainmesh/export"
)

func TestJSON_PathProducesLinearLinks(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	g.AddSingleChainComponent(3)
	g.Update()

	out, err := export.JSON(g)
	require.NoError(t, err)

	var doc struct {
		Vertices []struct {
			D   int   `json:"d"`
			Ind int   `json:"ind"`
			W   []int `json:"w"`
			E   []int `json:"e"`
		} `json:"vertices"`
		Links []struct {
			SourceID int `json:"source_id"`
			TargetID int `json:"target_id"`
		} `json:"links"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	require.Len(t, doc.Links, 3)
	require.Len(t, doc.Vertices, 4)
}

func TestJSON_NilGraphRejected(t *testing.T) {
	t.Parallel()

	_, err := export.JSON(nil)
	require.ErrorIs(t, err, export.ErrNilGraph)
}
