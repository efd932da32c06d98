package upload

import (
	"errors"

	"market-board/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for uploads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/upload")
	group.Post("/", h.HandleUpload)
	group.Post("/:apiKey", h.HandleUpload)
}

// HandleUpload accepts a listings or sale history upload.
// @Summary Upload Market Data
// @Description Upload one world's current listings or completed sales of an item. Exactly one of listings or entries is used; listings win when both are sent.
// @Tags upload
// @Accept json
// @Produce plain
// @Param apiKey path string true "Trusted source API key"
// @Param body body object true "Upload body with itemID, worldID and listings or entries"
// @Success 200 {string} string "Success"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 415 {object} map[string]string "Unsupported Payload"
// @Failure 418 {object} map[string]string "No Listings Or Entries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /upload/{apiKey} [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	_, err := h.service.Process(c.Context(), l, Request{
		APIKey:      c.Params("apiKey"),
		ContentType: c.Get(fiber.HeaderContentType),
		Body:        c.Body(),
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			l.Debug("Upload rejected", zap.Int("status", fe.Code), zap.Error(err))
			return c.Status(fe.Code).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendString("Success")
}
