package propagator

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// W3C Trace Context header names produced by Inject.
const (
	HeaderTraceParent = "traceparent"
	HeaderTraceState  = "tracestate"
)

// Setup installs the composite W3C TraceContext + Baggage propagator as the
// process-wide default.
func Setup() {
	prop := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	otel.SetTextMapPropagator(prop)
}

// Inject serializes the active trace context from ctx into a flat header
// mapping. The result is empty when no valid span context is active.
func Inject(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier
}

// Extract reads trace context from a flat header mapping and returns a
// context carrying the remote span context.
func Extract(parent context.Context, headers map[string]string) context.Context {
	return otel.GetTextMapPropagator().Extract(parent, propagation.MapCarrier(headers))
}
