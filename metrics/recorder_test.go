package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/chainmesh/chainmesh/metrics"
)

func TestRecorder_ObserveTransformIncrementsCounter(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.ObserveTransform("pulling.PullD1")
	r.ObserveTransform("pulling.PullD1")

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, fam := range families {
		if fam.GetName() != "chainmesh_transform_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	require.Equal(t, float64(2), total)
}

func TestRecorder_ObserveComponentCountSetsGauge(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.ObserveComponentCount(5)

	families, err := reg.Gather()
	require.NoError(t, err)

	found := false
	for _, fam := range families {
		if fam.GetName() != "chainmesh_component_count" {
			continue
		}
		for _, m := range fam.GetMetric() {
			require.Equal(t, float64(5), m.GetGauge().GetValue())
			found = true
		}
	}
	require.True(t, found)
}

func TestRecorder_ObservePullDistanceRecordsSample(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.ObservePullDistance(3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var histo *dto.Histogram
	for _, fam := range families {
		if fam.GetName() != "chainmesh_pull_distance_edges" {
			continue
		}
		histo = fam.GetMetric()[0].GetHistogram()
	}
	require.NotNil(t, histo)
	require.Equal(t, uint64(1), histo.GetSampleCount())
}
