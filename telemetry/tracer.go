package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ChainAttrKey and ComponentAttrKey name the span attributes that ChainAttr
// and ComponentAttr build for a traced call.
const (
	ChainAttrKey     = "chainmesh.chain_id"
	ComponentAttrKey = "chainmesh.component_id"
)

// ChainAttr builds the chain-id attribute for a traced call.
func ChainAttr(id int) attribute.KeyValue {
	return attribute.Int(ChainAttrKey, id)
}

// ComponentAttr builds the component-id attribute for a traced call.
func ComponentAttr(id int) attribute.KeyValue {
	return attribute.Int(ComponentAttrKey, id)
}

// Trace starts a span named name under tracer, runs fn, records any error
// it returns onto the span (codes.Error, span.RecordError), and ends the
// span before returning. A call site places it around a transform call
// (merger, split, edge, component, pulling) to get span coverage without the
// transform package importing otel; no transform package calls it itself.
func Trace(ctx context.Context, tracer trace.Tracer, name string, attrs []attribute.KeyValue, fn func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	span.SetStatus(codes.Ok, "")

	return nil
}
