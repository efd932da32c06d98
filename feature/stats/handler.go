package stats

import (
	"context"

	"market-board/core/logger"
	"market-board/core/worlds"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for statistics.
type Handler struct {
	service  *Service
	resolver *worlds.Resolver
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, resolver *worlds.Resolver) *Handler {
	return &Handler{service: service, resolver: resolver}
}

// RegisterRoutes registers the stats routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/extra/stats")
	group.Get("/upload-history", h.HandleUploadHistory)
	group.Get("/most-recently-updated", h.HandleMostRecentlyUpdated)
	group.Get("/least-recently-updated", h.HandleLeastRecentlyUpdated)
}

// HandleUploadHistory returns daily upload counts.
// @Summary Get Upload History
// @Description Number of accepted uploads per UTC day, today first.
// @Tags stats
// @Produce json
// @Param entries query int false "Number of days (default 30)"
// @Success 200 {object} map[string][]int64 "uploadCountByDay"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/extra/stats/upload-history [get]
func (h *Handler) HandleUploadHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	counts, err := h.service.DailyUploads(c.Context(), c.QueryInt("entries", 0))
	if err != nil {
		l.Error("Upload history query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"uploadCountByDay": counts})
}

// HandleMostRecentlyUpdated returns the most recently updated items.
// @Summary Get Most Recently Updated Items
// @Description Items ordered by last upload, newest first. world takes precedence over dcName.
// @Tags stats
// @Produce json
// @Param world query string false "World ID or name"
// @Param dcName query string false "Datacenter name"
// @Param entries query int false "Number of items (default 50, max 200)"
// @Success 200 {object} map[string][]stats.WorldItemPair "items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/extra/stats/most-recently-updated [get]
func (h *Handler) HandleMostRecentlyUpdated(c *fiber.Ctx) error {
	return h.handleRanking(c, h.service.MostRecentlyUpdated)
}

// HandleLeastRecentlyUpdated returns the least recently updated items.
// @Summary Get Least Recently Updated Items
// @Description Items ordered by last upload, oldest first. world takes precedence over dcName.
// @Tags stats
// @Produce json
// @Param world query string false "World ID or name"
// @Param dcName query string false "Datacenter name"
// @Param entries query int false "Number of items (default 50, max 200)"
// @Success 200 {object} map[string][]stats.WorldItemPair "items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/extra/stats/least-recently-updated [get]
func (h *Handler) HandleLeastRecentlyUpdated(c *fiber.Ctx) error {
	return h.handleRanking(c, h.service.LeastRecentlyUpdated)
}

type rankingFunc = func(ctx context.Context, scope worlds.Selector, n int) ([]WorldItemPair, error)

func (h *Handler) handleRanking(c *fiber.Ctx, rank rankingFunc) error {
	l := logger.WithRayID(h.service.logger, c)
	scope := h.resolver.ResolveScope(c.Query("world"), c.Query("dcName"))

	items, err := rank(c.Context(), scope, c.QueryInt("entries", 0))
	if err != nil {
		l.Error("Recency query failed", zap.String("scope", scope.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"items": items})
}
