package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narender/webapp-telemetry/apierrors"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})
	app.Use(Recovery())
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (int, ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope ErrorResponse
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp.StatusCode, envelope
}

func TestErrorHandlerAppError(t *testing.T) {
	app := newTestApp()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apierrors.NewAppError(apierrors.ErrCodeNotFound, "User not found", nil)
	})

	status, envelope := doRequest(t, app, "/missing")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, apierrors.ErrCodeNotFound, envelope.Error.Code)
	assert.Equal(t, "User not found", envelope.Error.Message)
	assert.NotEmpty(t, envelope.Error.Timestamp)
}

func TestErrorHandlerValidationError(t *testing.T) {
	app := newTestApp()
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return apierrors.NewAppError(apierrors.ErrCodeRequestValidation, "Missing required field", nil)
	})

	status, envelope := doRequest(t, app, "/invalid")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apierrors.ErrCodeRequestValidation, envelope.Error.Code)
}

func TestErrorHandlerTimeout(t *testing.T) {
	app := newTestApp()
	app.Get("/slow", func(c *fiber.Ctx) error {
		return context.DeadlineExceeded
	})

	status, envelope := doRequest(t, app, "/slow")

	assert.Equal(t, http.StatusRequestTimeout, status)
	assert.Equal(t, apierrors.ErrCodeRequestTimeout, envelope.Error.Code)
}

func TestErrorHandlerUnknownError(t *testing.T) {
	app := newTestApp()
	app.Get("/broken", func(c *fiber.Ctx) error {
		return errors.New("internal detail that must not leak")
	})

	status, envelope := doRequest(t, app, "/broken")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, apierrors.ErrCodeUnknown, envelope.Error.Code)
	assert.NotContains(t, envelope.Error.Message, "internal detail")
}

func TestRecoveryConvertsPanic(t *testing.T) {
	app := newTestApp()
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("handler exploded")
	})

	status, envelope := doRequest(t, app, "/panic")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, apierrors.ErrCodeSystemPanic, envelope.Error.Code)
	assert.Equal(t, "A critical system error occurred.", envelope.Error.Message)
}

func TestRecoveryNonErrorPanicValue(t *testing.T) {
	app := newTestApp()
	app.Get("/panic-struct", func(c *fiber.Ctx) error {
		panic(struct{ Reason string }{"corrupt state"})
	})

	status, envelope := doRequest(t, app, "/panic-struct")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, apierrors.ErrCodeSystemPanic, envelope.Error.Code)
}
