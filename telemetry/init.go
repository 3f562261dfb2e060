package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	otelhost "go.opentelemetry.io/contrib/instrumentation/host"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"
	"google.golang.org/grpc"

	"github.com/narender/webapp-telemetry/config"
	"github.com/narender/webapp-telemetry/logging"
	"github.com/narender/webapp-telemetry/telemetry/exporter"
	tellog "github.com/narender/webapp-telemetry/telemetry/log"
	telmetric "github.com/narender/webapp-telemetry/telemetry/metric"
	"github.com/narender/webapp-telemetry/telemetry/propagator"
	"github.com/narender/webapp-telemetry/telemetry/resource"
	teltrace "github.com/narender/webapp-telemetry/telemetry/trace"
)

const setupTimeout = 15 * time.Second

var (
	initialized atomic.Bool

	shutdownMu    sync.Mutex
	shutdownFuncs []func(context.Context) error
)

// Initialize stands up the process-wide telemetry pipelines: tracing over
// OTLP/gRPC with W3C propagation, metrics, and trace-correlated logs.
//
// It runs at most once per process; later calls are no-ops, and the flag is
// set even when initialization fails so a broken collector configuration is
// not retried on every entry point. Failures are logged as warnings and
// never reach the caller: the application keeps running untraced.
func Initialize(opts ...config.Option) {
	if !initialized.CompareAndSwap(false, true) {
		return
	}

	cfg := config.Load(opts...)
	logging.SetupLogrus(cfg)

	if errs := cfg.Validate(); len(errs) > 0 {
		logrus.WithField("errors", errs).Warn("Telemetry configuration invalid, proceeding with best effort")
	}

	if err := setup(cfg); err != nil {
		logrus.WithError(err).Warn("Telemetry initialization incomplete; application continues without full telemetry")
	}
}

// Initialized reports whether Initialize has run (successfully or not).
func Initialized() bool {
	return initialized.Load()
}

// setup builds the three pipelines. A failure in one pipeline does not stop
// the others; all errors are joined for the caller's warning log.
func setup(cfg *config.Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(err, fmt.Errorf("telemetry setup panic: %v", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	res, resErr := resource.NewResource(ctx, cfg)
	if resErr != nil {
		return fmt.Errorf("resource creation failed: %w", resErr)
	}

	connOpts := []grpc.DialOption{
		grpc.WithUserAgent("webapp-telemetry/" + cfg.ServiceVersion),
	}

	// Traces
	traceExporter, traceErr := exporter.NewTraceExporter(ctx, cfg, connOpts)
	if traceErr != nil {
		err = errors.Join(err, fmt.Errorf("trace pipeline: %w", traceErr))
	} else {
		tp, tpShutdown := teltrace.NewTracerProvider(res, traceExporter, teltrace.NewSampler(cfg.OtelSampleRatio), cfg.OtelBatchTimeout)
		otel.SetTracerProvider(tp)
		addShutdown(tpShutdown)
	}
	propagator.Setup()

	// Metrics
	metricExporter, metricErr := exporter.NewMetricExporter(ctx, cfg, connOpts)
	if metricErr != nil {
		err = errors.Join(err, fmt.Errorf("metric pipeline: %w", metricErr))
	} else {
		mp, mpShutdown := telmetric.NewMeterProvider(res, metricExporter, 15*time.Second)
		otel.SetMeterProvider(mp)
		addShutdown(mpShutdown)

		if runtimeErr := otelruntime.Start(otelruntime.WithMinimumReadMemStatsInterval(10 * time.Second)); runtimeErr != nil {
			logrus.WithError(runtimeErr).Warn("Runtime instrumentation not started")
		}
		if hostErr := otelhost.Start(); hostErr != nil {
			logrus.WithError(hostErr).Warn("Host instrumentation not started")
		}
	}

	// Logs
	logExporter, logErr := exporter.NewLogExporter(ctx, cfg, connOpts)
	if logErr != nil {
		err = errors.Join(err, fmt.Errorf("log pipeline: %w", logErr))
	} else {
		lp, lpShutdown := tellog.NewLoggerProvider(cfg, res, logExporter)
		global.SetLoggerProvider(lp)
		addShutdown(lpShutdown)
		logging.AttachOtelHook()
	}

	if err == nil {
		logrus.WithFields(logrus.Fields{
			"service_name":  cfg.ServiceName,
			"otel_endpoint": cfg.OtelEndpoint,
			"sample_ratio":  cfg.OtelSampleRatio,
		}).Info("OpenTelemetry instrumentation initialized")
	}

	return err
}

func addShutdown(fn func(context.Context) error) {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	shutdownFuncs = append(shutdownFuncs, fn)
}

// Shutdown flushes and tears down every initialized provider in reverse
// order. Safe to call when Initialize never ran or failed partway.
func Shutdown(ctx context.Context) error {
	shutdownMu.Lock()
	funcs := shutdownFuncs
	shutdownFuncs = nil
	shutdownMu.Unlock()

	var shutdownErr error
	for i := len(funcs) - 1; i >= 0; i-- {
		shutdownErr = errors.Join(shutdownErr, funcs[i](ctx))
	}
	return shutdownErr
}
