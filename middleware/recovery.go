package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/narender/webapp-telemetry/apierrors"
	telmetric "github.com/narender/webapp-telemetry/telemetry/metric"
	teltrace "github.com/narender/webapp-telemetry/telemetry/trace"
)

// Recovery converts a handler panic into a diagnostic span, a counter
// increment and a 500 response. This is the synchronous half of the
// uncaught-error handling; telemetry.Go covers detached goroutines.
func Recovery() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				ctx := c.UserContext()

				teltrace.RecordUncaught(ctx, r, nil)
				telmetric.Default().RecordUncaughtError(ctx)

				logrus.WithContext(ctx).WithFields(logrus.Fields{
					"panic":  fmt.Sprintf("%v", r),
					"stack":  string(debug.Stack()),
					"path":   c.Path(),
					"method": c.Method(),
				}).Error("Unhandled panic recovered")

				recovered, ok := r.(error)
				if !ok {
					recovered = fmt.Errorf("panic: %v", r)
				}
				err = apierrors.NewAppError(apierrors.ErrCodeSystemPanic,
					"A critical system error occurred.", recovered)
			}
		}()
		return c.Next()
	}
}
