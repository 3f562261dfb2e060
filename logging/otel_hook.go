package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"
)

const hookScopeName = "github.com/narender/webapp-telemetry/logging"

// OtelHook implements logrus.Hook. It stamps trace context onto each entry
// and mirrors the entry to the global OTel logger provider so logs and
// traces stay correlated in the collector.
type OtelHook struct{}

// NewOtelHook creates a hook instance. It assumes the global OTel
// LoggerProvider has been (or will be) set; until then records go to a
// no-op provider.
func NewOtelHook() *OtelHook {
	return &OtelHook{}
}

// Levels returns the log levels this hook fires for.
func (h *OtelHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire adds trace/span IDs to the entry fields and emits an OTel log record.
func (h *OtelHook) Fire(entry *logrus.Entry) error {
	ctx := entry.Context
	if ctx == nil {
		ctx = context.Background()
	}

	spanCtx := trace.SpanFromContext(ctx).SpanContext()
	if spanCtx.IsValid() {
		entry.Data["trace_id"] = spanCtx.TraceID().String()
		entry.Data["span_id"] = spanCtx.SpanID().String()
		entry.Data["trace_flags"] = spanCtx.TraceFlags().String()
	}

	otelLogger := global.GetLoggerProvider().Logger(hookScopeName)

	record := otellog.Record{}
	record.SetTimestamp(entry.Time)
	record.SetObservedTimestamp(time.Now())
	record.SetSeverity(mapLogLevel(entry.Level))
	record.SetSeverityText(entry.Level.String())
	record.SetBody(otellog.StringValue(entry.Message))

	for k, v := range entry.Data {
		switch val := v.(type) {
		case string:
			record.AddAttributes(otellog.String(k, val))
		case int:
			record.AddAttributes(otellog.Int(k, val))
		case int64:
			record.AddAttributes(otellog.Int64(k, val))
		case float64:
			record.AddAttributes(otellog.Float64(k, val))
		case bool:
			record.AddAttributes(otellog.Bool(k, val))
		case error:
			record.AddAttributes(otellog.String(k, val.Error()))
		default:
			record.AddAttributes(otellog.String(k, fmt.Sprintf("%+v", val)))
		}
	}

	otelLogger.Emit(ctx, record)
	return nil
}

// mapLogLevel converts a logrus level to an OTel severity number.
func mapLogLevel(level logrus.Level) otellog.Severity {
	switch level {
	case logrus.TraceLevel:
		return otellog.SeverityTrace
	case logrus.DebugLevel:
		return otellog.SeverityDebug
	case logrus.InfoLevel:
		return otellog.SeverityInfo
	case logrus.WarnLevel:
		return otellog.SeverityWarn
	case logrus.ErrorLevel:
		return otellog.SeverityError
	case logrus.FatalLevel, logrus.PanicLevel:
		return otellog.SeverityFatal
	default:
		return otellog.SeverityInfo
	}
}
