// Package app assembles the demo REST application that exercises the
// telemetry glue: instrumented server, panic recovery, request logging and
// the standardized error envelope.
package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/narender/webapp-telemetry/config"
	"github.com/narender/webapp-telemetry/middleware"
)

// New builds the Fiber app with the full middleware stack and routes.
func New(cfg *config.Config) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(),
	})

	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Traceparent, Tracestate",
	}))
	fiberApp.Use(middleware.Recovery())
	fiberApp.Use(middleware.Otel())
	fiberApp.Use(middleware.RequestLogger())

	registerRoutes(fiberApp)

	return fiberApp
}

func registerRoutes(fiberApp *fiber.App) {
	fiberApp.Get("/health", healthCheck)

	api := fiberApp.Group("/api/v1")
	api.Get("/users/me", currentUser)
	api.Get("/boom", boom)
}
