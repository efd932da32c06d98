package stats

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"market-board/core/worlds/worldstest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlers(t *testing.T) {
	s, clk := setupService(t, Config{CacheTTLSeconds: 0})
	touchAll(t, s, clk)
	require.NoError(t, s.IncrementDailyUploads(context.Background()))

	app := fiber.New()
	NewHandler(s, worldstest.Resolver()).RegisterRoutes(app)

	get := func(path string) map[string]any {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil), 2000)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		var out map[string]any
		require.NoError(t, json.Unmarshal(body, &out))
		return out
	}

	t.Run("Upload History", func(t *testing.T) {
		body := get("/api/extra/stats/upload-history?entries=2")
		assert.Equal(t, []any{float64(1), float64(0)}, body["uploadCountByDay"])
	})

	t.Run("Most Recent World Wins Over Datacenter", func(t *testing.T) {
		body := get("/api/extra/stats/most-recently-updated?world=Coeurl&dcName=Aether")
		items := body["items"].([]any)
		require.Len(t, items, 1)
		assert.EqualValues(t, 3, items[0].(map[string]any)["itemID"])
	})

	t.Run("Least Recent Datacenter Hint", func(t *testing.T) {
		body := get("/api/extra/stats/least-recently-updated?world=0&dcName=Aether&entries=1")
		items := body["items"].([]any)
		require.Len(t, items, 1)
		assert.EqualValues(t, 2, items[0].(map[string]any)["itemID"])
		assert.EqualValues(t, 40, items[0].(map[string]any)["worldID"])
	})
}
