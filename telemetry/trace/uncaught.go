package trace

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const uncaughtSpanName = "uncaught.error"

// ErrUncaught is the fallback used when a recovered value cannot be
// rendered into a meaningful message.
var ErrUncaught = errors.New("uncaught error")

// Source carries best-effort source location of an uncaught failure.
type Source struct {
	File   string
	Line   int
	Column int
}

// NormalizeError coerces any recovered value into an error with a non-empty
// message. Errors pass through, strings are wrapped, anything else is
// rendered with fmt; values whose formatting misbehaves fall back to
// ErrUncaught. Never panics.
func NormalizeError(v any) (err error) {
	defer func() {
		if recover() != nil {
			err = ErrUncaught
		}
	}()

	switch val := v.(type) {
	case nil:
		return ErrUncaught
	case error:
		if val.Error() == "" {
			return ErrUncaught
		}
		return val
	case string:
		if val == "" {
			return ErrUncaught
		}
		return errors.New(val)
	default:
		// fmt renders panicking String/Error methods as %!v(PANIC=..)
		// instead of propagating, so this is safe for hostile values.
		msg := fmt.Sprintf("%v", val)
		if msg == "" {
			return ErrUncaught
		}
		return errors.New(msg)
	}
}

// RecordUncaught converts an uncaught failure into a short-lived diagnostic
// span so that every such failure yields at least one exportable record,
// even without an enclosing request. It never panics and never blocks.
func RecordUncaught(ctx context.Context, v any, src *Source) {
	defer func() {
		_ = recover()
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	err := NormalizeError(v)

	attrs := []attribute.KeyValue{
		semconv.ExceptionTypeKey.String(fmt.Sprintf("%T", v)),
		semconv.ExceptionMessageKey.String(err.Error()),
	}
	if src != nil {
		if src.File != "" {
			attrs = append(attrs, semconv.CodeFilepathKey.String(src.File))
		}
		if src.Line > 0 {
			attrs = append(attrs, semconv.CodeLineNumberKey.Int(src.Line))
		}
		if src.Column > 0 {
			attrs = append(attrs, semconv.CodeColumnKey.Int(src.Column))
		}
	}

	_, span := otel.Tracer(tracerName).Start(ctx, uncaughtSpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	span.RecordError(err, trace.WithStackTrace(true))
	span.SetStatus(codes.Error, err.Error())
	span.End()
}
