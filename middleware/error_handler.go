package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/narender/webapp-telemetry/apierrors"
	teltrace "github.com/narender/webapp-telemetry/telemetry/trace"
)

// ErrorDetail is the error payload shape returned to clients.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the standardized JSON error envelope.
type ErrorResponse struct {
	Status string      `json:"status"`
	Error  ErrorDetail `json:"error"`
}

// ErrorHandler maps application errors to HTTP responses, records the error
// on the active span, and logs with a level matching the status class.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		statusCode := http.StatusInternalServerError
		errCode := apierrors.ErrCodeUnknown
		message := "An unexpected error occurred. Please try again later."

		var appErr *apierrors.AppError
		var fiberErr *fiber.Error
		var netErr net.Error
		var jsonErr *json.SyntaxError

		switch {
		case errors.As(err, &appErr):
			errCode = appErr.Code
			message = appErr.Message
			statusCode = statusForCode(appErr.Code)

		case errors.As(err, &fiberErr):
			statusCode = fiberErr.Code
			message = fiberErr.Message

		case errors.As(err, &netErr):
			errCode = apierrors.ErrCodeNetworkError
			statusCode = http.StatusServiceUnavailable
			message = "Network connectivity issue occurred"

		case errors.As(err, &jsonErr):
			errCode = apierrors.ErrCodeMalformedData
			statusCode = http.StatusBadRequest
			message = "Invalid data format in request"

		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			errCode = apierrors.ErrCodeRequestTimeout
			statusCode = http.StatusRequestTimeout
			message = "Request processing timed out"
		}

		ctx := c.UserContext()
		if span := oteltrace.SpanFromContext(ctx); span.IsRecording() {
			teltrace.RecordSpanError(span, err)
		}

		entry := logrus.WithContext(ctx).WithFields(logrus.Fields{
			"error_code":  errCode,
			"status_code": statusCode,
			"method":      c.Method(),
			"path":        c.Path(),
			"error":       err.Error(),
		})
		if statusCode >= 500 {
			entry.Error("Request failed")
		} else {
			entry.Warn("Request rejected")
		}

		c.Status(statusCode)
		return c.JSON(ErrorResponse{
			Status: "error",
			Error: ErrorDetail{
				Code:      errCode,
				Message:   message,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		})
	}
}

func statusForCode(code string) int {
	switch code {
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeRequestValidation, apierrors.ErrCodeMalformedData:
		return http.StatusBadRequest
	case apierrors.ErrCodeServiceUnavailable, apierrors.ErrCodeNetworkError:
		return http.StatusServiceUnavailable
	case apierrors.ErrCodeRequestTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
