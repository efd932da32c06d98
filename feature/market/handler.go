package market

import (
	"errors"
	"strconv"

	"market-board/core/logger"
	"market-board/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for market queries.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the market routes. History is registered first so
// /api/history/... is not taken for a world named "history".
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Get("/history/:world/:itemIDs", h.HandleHistory)
	group.Get("/:world/:itemIDs", h.HandleCurrentState)
}

// HandleCurrentState returns current listings and price figures.
// @Summary Get Current Market State
// @Description Current listings, recent sales and price statistics for up to 100 comma separated items. A single item returns the bare document.
// @Tags market
// @Produce json
// @Param world path string true "World ID, world name or datacenter name"
// @Param itemIDs path string true "Comma separated item IDs"
// @Param listings query int false "Maximum listings per item (0 = all)"
// @Param entries query int false "Recent history entries per item"
// @Param hq query string false "Only HQ (true) or NQ (false) listings"
// @Success 200 {object} market.CurrentDocument "Single item"
// @Success 200 {object} market.Response[market.CurrentDocument] "Multiple items"
// @Failure 400 {object} map[string]string "Bad item list"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/{world}/{itemIDs} [get]
func (h *Handler) HandleCurrentState(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	ids, err := ParseItemIDs(c.Params("itemIDs"), h.service.MaxItemsPerQuery())
	if err != nil {
		return reject(c, err)
	}
	sel := h.service.Resolver().Resolve(c.Params("world"))

	opts := CurrentOptions{
		Listings: c.QueryInt("listings", 0),
		Entries:  c.QueryInt("entries", -1),
	}
	if raw := c.Query("hq"); raw != "" {
		hq := utils.ParseUnusualBool(raw)
		opts.HQ = &hq
	}

	resp, err := h.service.CurrentState(c.Context(), sel, ids, opts)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return reject(c, err)
		}
		l.Error("Current state query failed", zap.String("scope", sel.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp.Body())
}

// HandleHistory returns the newest sales.
// @Summary Get Sale History
// @Description Up to 500 of the newest sales per item for up to 100 comma separated items. A single item returns the bare document.
// @Tags market
// @Produce json
// @Param world path string true "World ID, world name or datacenter name"
// @Param itemIDs path string true "Comma separated item IDs"
// @Param entries query int false "Maximum sales per item (capped at 500)"
// @Param entriesToReturn query int false "Alias of entries"
// @Success 200 {object} market.HistoryDocument "Single item"
// @Success 200 {object} market.Response[market.HistoryDocument] "Multiple items"
// @Failure 400 {object} map[string]string "Bad item list"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/history/{world}/{itemIDs} [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	ids, err := ParseItemIDs(c.Params("itemIDs"), h.service.MaxItemsPerQuery())
	if err != nil {
		return reject(c, err)
	}
	sel := h.service.Resolver().Resolve(c.Params("world"))

	entries := 0
	if raw := c.Query("entriesToReturn", c.Query("entries")); raw != "" {
		entries, err = strconv.Atoi(raw)
		if err != nil {
			return reject(c, fiber.NewError(fiber.StatusBadRequest, "entries must be an integer"))
		}
	}

	resp, err := h.service.History(c.Context(), sel, ids, entries)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return reject(c, err)
		}
		l.Error("History query failed", zap.String("scope", sel.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp.Body())
}

func reject(c *fiber.Ctx, err error) error {
	code := fiber.StatusBadRequest
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
