package stats

import (
	"market-board/core/worlds"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Stats feature.
func NewFeature(logger *zap.Logger, db *gorm.DB, resolver *worlds.Resolver, cfg Config) *Feature {
	svc := NewService(logger, db, cfg)
	return &Feature{service: svc, handler: NewHandler(svc, resolver)}
}

// Service returns the stats service, shared with the upload feature.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "stats"
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

// Models lists the tables owned by this feature.
func (f *Feature) Models() []any {
	return []any{&RecentUpdate{}, &DailyUploadCount{}}
}
