package market

import (
	"market-board/core/worlds"
	"market-board/feature/market/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Market feature.
func NewFeature(logger *zap.Logger, db *gorm.DB, resolver *worlds.Resolver, cfg Config) *Feature {
	svc := NewService(logger, db, resolver, cfg)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service returns the aggregation service, shared with the upload feature.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "market"
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
	return []any{&models.MarketRecord{}, &models.HistoryRecord{}}
}
