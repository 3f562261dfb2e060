package exporter

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"google.golang.org/grpc"

	"github.com/narender/webapp-telemetry/config"
)

// NewLogExporter creates an OTLP gRPC log record exporter bound to the
// configured collector endpoint.
func NewLogExporter(ctx context.Context, cfg *config.Config, connOpts []grpc.DialOption) (sdklog.Exporter, error) {
	endpoint, insecure := NormalizeEndpoint(cfg.OtelEndpoint, cfg.OtelInsecure)

	opts := []otlploggrpc.Option{
		otlploggrpc.WithEndpoint(endpoint),
		otlploggrpc.WithTimeout(cfg.OtelExportTimeout),
		otlploggrpc.WithDialOption(connOpts...),
	}
	if insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}

	logExporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}
	return logExporter, nil
}
