package log

import (
	"context"

	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/narender/webapp-telemetry/config"
)

// NewLoggerProvider builds a logger provider backed by a batching log
// record processor feeding the exporter.
func NewLoggerProvider(cfg *config.Config, res *resource.Resource, exporter sdklog.Exporter) (*sdklog.LoggerProvider, func(context.Context) error) {
	var processorOpts []sdklog.BatchProcessorOption
	if cfg.OtelExportTimeout > 0 {
		processorOpts = append(processorOpts, sdklog.WithExportTimeout(cfg.OtelExportTimeout))
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter, processorOpts...)),
	)

	return lp, lp.Shutdown
}
