package content

import (
	"market-board/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for content identities.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the content routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/extra/content")
	group.Get("/:contentID", h.HandleGetContent)
}

// HandleGetContent returns the public data of a hashed content ID.
// @Summary Get Content Identity
// @Description Look up the display name stored for a hashed character or retainer ID.
// @Tags content
// @Produce json
// @Param contentID path string true "sha256 of the content ID"
// @Success 200 {object} content.Record "Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/extra/content/{contentID} [get]
func (h *Handler) HandleGetContent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	rec, err := h.service.Get(c.Context(), c.Params("contentID"))
	if err != nil {
		l.Error("Content lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if rec == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "content not found",
		})
	}

	return c.JSON(rec)
}
