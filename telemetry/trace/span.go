package trace

import (
	"context"
	"runtime"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/narender/webapp-telemetry/telemetry/trace"

// StatusMapperFunc maps an error to a span status code.
type StatusMapperFunc func(error) codes.Code

// DefaultStatusMapper marks any non-nil error as a span error.
func DefaultStatusMapper(err error) codes.Code {
	if err == nil {
		return codes.Ok
	}
	return codes.Error
}

// StartSpan begins a new internal span, inferring the operation name from
// the caller and attaching standard code attributes.
func StartSpan(ctx context.Context, initialAttrs ...attribute.KeyValue) (context.Context, trace.Span) {
	operationName := callerFunctionName(3)
	tracer := otel.Tracer(tracerName)

	opts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(semconv.CodeFunctionKey.String(operationName)),
	}
	if len(initialAttrs) > 0 {
		opts = append(opts, trace.WithAttributes(initialAttrs...))
	}

	if ctx == nil {
		ctx = context.Background()
	}
	return tracer.Start(ctx, operationName, opts...)
}

// EndSpan concludes the given span, recording the error pointed to by
// errPtr (if any) and setting the span status accordingly.
func EndSpan(span trace.Span, errPtr *error, statusMapper StatusMapperFunc, options ...trace.SpanEndOption) {
	defer span.End(options...)

	if errPtr == nil || *errPtr == nil {
		span.SetStatus(codes.Ok, "")
		return
	}

	err := *errPtr
	span.RecordError(err, trace.WithStackTrace(true))

	mapper := statusMapper
	if mapper == nil {
		mapper = DefaultStatusMapper
	}
	statusCode := mapper(err)

	statusMsg := ""
	if statusCode == codes.Error {
		statusMsg = err.Error()
	}

	span.SetStatus(statusCode, statusMsg)
}

// RecordSpanError records err on span with exception semconv attributes and
// sets the span status to error.
func RecordSpanError(span trace.Span, err error, attrs ...attribute.KeyValue) {
	if span == nil || !span.IsRecording() || err == nil {
		return
	}

	allAttrs := append([]attribute.KeyValue{
		semconv.ExceptionMessageKey.String(err.Error()),
	}, attrs...)

	span.RecordError(err, trace.WithAttributes(allAttrs...))
	span.SetStatus(codes.Error, err.Error())
}

// callerFunctionName retrieves the bare name of the calling function,
// ascending skip stack frames.
func callerFunctionName(skip int) string {
	pc := make([]uintptr, 1)
	if runtime.Callers(skip, pc) == 0 {
		return "<unknown>"
	}
	fn := runtime.FuncForPC(pc[0])
	if fn == nil {
		return "<unknown>"
	}
	name := fn.Name()
	if lastDot := strings.LastIndexByte(name, '.'); lastDot != -1 {
		name = name[lastDot+1:]
	}
	return name
}
