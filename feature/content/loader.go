package content

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Content feature.
func NewFeature(logger *zap.Logger, db *gorm.DB) *Feature {
	svc := NewService(logger, db)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service returns the content service, shared with the upload feature.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "content"
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
	return []any{&Record{}}
}
