package logger_test

import (
	"net/http/httptest"
	"testing"

	"market-board/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}, false},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}, false},
		{"Warn", logger.Config{Level: "warn"}, false},
		{"Invalid", logger.Config{Level: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestWithRayID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals("ray_id", "ray-123")
		logger.WithRayID(base, c).Info("tagged")
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		logger.WithRayID(base, c).Info("untagged")
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/plain", nil))
	assert.NoError(t, err)

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "ray-123", entries[0].ContextMap()["ray_id"])
		_, ok := entries[1].ContextMap()["ray_id"]
		assert.False(t, ok)
	}
}
