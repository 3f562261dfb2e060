package middleware

import (
	otelfiber "github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
)

// Otel returns the server-side tracing middleware: one span per handled
// request, continuing whatever trace context arrives in the headers.
func Otel(opts ...otelfiber.Option) fiber.Handler {
	return otelfiber.Middleware(opts...)
}
