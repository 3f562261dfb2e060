package app

import (
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"

	teltrace "github.com/narender/webapp-telemetry/telemetry/trace"
)

// User is the demo account returned by the current-user endpoint.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func currentUser(c *fiber.Ctx) error {
	ctx, span := teltrace.StartSpan(c.UserContext(),
		attribute.String("user.id", "demo"),
	)
	defer span.End()
	c.SetUserContext(ctx)

	return c.JSON(fiber.Map{
		"data": User{
			ID:       "demo",
			Email:    "demo@example.com",
			FullName: "Demo User",
			IsActive: true,
		},
	})
}

// boom exists to exercise the recovery middleware end to end.
func boom(c *fiber.Ctx) error {
	panic("boom endpoint triggered")
}
