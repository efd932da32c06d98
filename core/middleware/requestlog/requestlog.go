package requestlog

import (
	"time"

	"market-board/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New logs the start and the outcome of every request with the ray id
// attached. It must be registered after the rayid middleware.
func New(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(log, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)

		start := time.Now()
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
			return err
		}

		l.Debug("Request finished",
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return nil
	}
}
