package upload

import (
	"market-board/feature/sources"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Upload feature.
func NewFeature(logger *zap.Logger, src Sources, agg Aggregator, rec Recorder, obs ContentObserver) *Feature {
	svc := NewService(logger, src, agg, rec, obs)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "upload"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Models lists the credential tables checked by uploads.
func (f *Feature) Models() []any {
	return sources.Models()
}
