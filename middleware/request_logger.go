package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs one line per request with method, path, status and
// duration. The entry carries the request context, so the OTel hook stamps
// trace and span IDs onto it.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		statusCode := c.Response().StatusCode()
		entry := logrus.WithContext(c.UserContext()).WithFields(logrus.Fields{
			"method":      method,
			"path":        path,
			"status_code": statusCode,
			"duration":    time.Since(start).String(),
			"ip":          c.IP(),
			"user_agent":  string(c.Request().Header.UserAgent()),
		})
		if err != nil {
			entry = entry.WithError(err)
		}

		msg := "Request completed"
		switch {
		case statusCode >= 500:
			entry.Error(msg)
		case statusCode >= 400:
			entry.Warn(msg)
		default:
			entry.Info(msg)
		}

		return err
	}
}
