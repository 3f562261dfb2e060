package trace

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewSampler builds the sampler used for all root spans: parent-based so
// that remote decisions are honored, ratio-based for locally rooted traces.
func NewSampler(ratio float64) sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// NewTracerProvider builds a tracer provider backed by a batching span
// processor. Spans are buffered and flushed in batches; callers never wait
// on export.
func NewTracerProvider(res *resource.Resource, exporter sdktrace.SpanExporter, sampler sdktrace.Sampler, batchTimeout time.Duration) (*sdktrace.TracerProvider, func(context.Context) error) {
	bspOpts := []sdktrace.BatchSpanProcessorOption{}
	if batchTimeout > 0 {
		bspOpts = append(bspOpts, sdktrace.WithBatchTimeout(batchTimeout))
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
		sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter, bspOpts...)),
	)

	return tp, tp.Shutdown
}
