package server_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"market-board/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_FiberConfig(t *testing.T) {
	c := server.Config{Port: "8080", BodyLimit: 2048, ReadTimeoutSeconds: 5, WriteTimeoutSeconds: 0}
	fc := c.FiberConfig()

	assert.Equal(t, 2048, fc.BodyLimit)
	assert.Equal(t, 5*time.Second, fc.ReadTimeout)
	assert.Zero(t, fc.WriteTimeout)
	assert.True(t, fc.DisableStartupMessage)
	assert.NotNil(t, fc.ErrorHandler)
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(server.Config{}.FiberConfig())
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "no data")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("storage down")
	})

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/teapot", fiber.StatusTeapot, `{"error":"no data"}`},
		{"/boom", fiber.StatusInternalServerError, `{"error":"storage down"}`},
		{"/missing", fiber.StatusNotFound, `{"error":"Cannot GET /missing"}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}
