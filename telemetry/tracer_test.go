package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/chainmesh/chainmesh/telemetry"
)

func TestTrace_SuccessRecordsOKSpan(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	tracer := tp.Tracer("test")

	err := telemetry.Trace(context.Background(), tracer, "vertexmerger.MergeOneOne",
		[]attribute.KeyValue{telemetry.ChainAttr(3)},
		func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Equal(t, "vertexmerger.MergeOneOne", spans[0].Name)
	require.Equal(t, codes.Ok, spans[0].Status.Code)
}

func TestTrace_ErrorRecordsErrorSpan(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	tracer := tp.Tracer("test")

	boom := errors.New("boom")
	err := telemetry.Trace(context.Background(), tracer, "edgeops.CreateInNewChain", nil,
		func(ctx context.Context) error { return boom })
	require.ErrorIs(t, err, boom)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Equal(t, codes.Error, spans[0].Status.Code)
}
