package market

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"market-board/feature/market/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, *Service) {
	s := setupService(t)
	app := fiber.New()
	NewHandler(s).RegisterRoutes(app)
	return app, s
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), 2000)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp.StatusCode, out
}

func TestHandleCurrentState(t *testing.T) {
	app, s := setupApp(t)
	_, err := s.ApplyListings(context.Background(), 5, gilgamesh, Attribution{SourceName: "hidden"}, []models.Listing{listing(10, 3)})
	require.NoError(t, err)

	t.Run("Single By World Name", func(t *testing.T) {
		code, body := getJSON(t, app, "/api/gilgamesh/5")
		assert.Equal(t, fiber.StatusOK, code)
		assert.EqualValues(t, 5, body["itemID"])
		assert.EqualValues(t, gilgamesh, body["worldID"])
		assert.NotContains(t, body, "items")

		listings := body["listings"].([]any)
		require.Len(t, listings, 1)
		first := listings[0].(map[string]any)
		assert.EqualValues(t, 30, first["total"])
		assert.NotContains(t, first, "sourceName")
		assert.NotContains(t, first, "uploaderIdHash")
	})

	t.Run("Multi By Datacenter", func(t *testing.T) {
		code, body := getJSON(t, app, "/api/Aether/5,6")
		assert.Equal(t, fiber.StatusOK, code)
		assert.Equal(t, "Aether", body["dcName"])
		assert.Len(t, body["items"], 2)
		assert.Equal(t, []any{float64(6)}, body["unresolvedItems"])
	})

	t.Run("By World ID", func(t *testing.T) {
		code, body := getJSON(t, app, "/api/63/5")
		assert.Equal(t, fiber.StatusOK, code)
		assert.Len(t, body["listings"], 1)
	})

	t.Run("Bad Item List", func(t *testing.T) {
		code, body := getJSON(t, app, "/api/63/5,abc")
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Contains(t, body, "error")
	})

	t.Run("World Zero", func(t *testing.T) {
		code, _ := getJSON(t, app, "/api/0/5")
		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}

func TestHandleHistory(t *testing.T) {
	app, s := setupApp(t)
	entries := []models.HistoryEntry{
		{PricePerUnit: 5, Quantity: 1, Timestamp: 10},
		{PricePerUnit: 6, Quantity: 1, Timestamp: 20},
		{PricePerUnit: 7, Quantity: 1, Timestamp: 30},
	}
	_, err := s.ApplyHistory(context.Background(), 5, jenova, Attribution{}, entries)
	require.NoError(t, err)

	code, body := getJSON(t, app, "/api/history/Aether/5?entries=2")
	assert.Equal(t, fiber.StatusOK, code)
	got := body["entries"].([]any)
	require.Len(t, got, 2)
	assert.EqualValues(t, 30, got[0].(map[string]any)["timestamp"])

	code, body = getJSON(t, app, "/api/history/Aether/5?entriesToReturn=1")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Len(t, body["entries"], 1)

	code, _ = getJSON(t, app, "/api/history/Aether/5?entries=many")
	assert.Equal(t, fiber.StatusBadRequest, code)
}
