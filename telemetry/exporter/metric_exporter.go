package exporter

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"google.golang.org/grpc"

	"github.com/narender/webapp-telemetry/config"
)

// NewMetricExporter creates an OTLP gRPC metric exporter bound to the
// configured collector endpoint.
func NewMetricExporter(ctx context.Context, cfg *config.Config, connOpts []grpc.DialOption) (sdkmetric.Exporter, error) {
	endpoint, insecure := NormalizeEndpoint(cfg.OtelEndpoint, cfg.OtelInsecure)

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(endpoint),
		otlpmetricgrpc.WithTimeout(cfg.OtelExportTimeout),
		otlpmetricgrpc.WithDialOption(connOpts...),
	}
	if insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	metricExporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}
	return metricExporter, nil
}
