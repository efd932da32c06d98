package rayid_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"market-board/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(seen *string) *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		*seen, _ = c.Locals(rayid.LocalsKey).(string)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestNew_Generates(t *testing.T) {
	var seen string
	resp, err := newApp(&seen).Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	header := resp.Header.Get(rayid.Header)
	assert.Equal(t, seen, header)
	_, err = uuid.Parse(header)
	assert.NoError(t, err)
}

func TestNew_ReusesIncoming(t *testing.T) {
	var seen string
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "upstream-1")

	resp, err := newApp(&seen).Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-1", seen)
	assert.Equal(t, "upstream-1", resp.Header.Get(rayid.Header))
}

func TestNew_RejectsOversizedIncoming(t *testing.T) {
	var seen string
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, strings.Repeat("x", 65))

	_, err := newApp(&seen).Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, strings.Repeat("x", 65), seen)
}
