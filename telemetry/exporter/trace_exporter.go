package exporter

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"

	"github.com/narender/webapp-telemetry/config"
)

// NewTraceExporter creates an OTLP gRPC span exporter bound to the
// configured collector endpoint. The export timeout bounds how long a
// batch flush may hold the connection; a slow collector never blocks
// application code.
func NewTraceExporter(ctx context.Context, cfg *config.Config, connOpts []grpc.DialOption) (sdktrace.SpanExporter, error) {
	endpoint, insecure := NormalizeEndpoint(cfg.OtelEndpoint, cfg.OtelInsecure)

	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTimeout(cfg.OtelExportTimeout),
		otlptracegrpc.WithDialOption(connOpts...),
	}
	if insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	traceExporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}
	return traceExporter, nil
}
