package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"market-board/core/identity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service stores hashed content identities.
type Service struct {
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new content service.
func NewService(logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{logger: logger, db: db}
}

// Get returns the first record stored for a hashed content ID, or nil when
// none exists.
func (s *Service) Get(ctx context.Context, contentIDHash string) (*Record, error) {
	var rec Record
	err := s.db.WithContext(ctx).
		Where("content_id = ?", strings.ToLower(contentIDHash)).
		Order("id").
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return &rec, nil
}

// Set hashes rawContentID and inserts a record. Duplicates are not checked.
func (s *Service) Set(ctx context.Context, rawContentID, contentType string, payload Payload) (*Record, error) {
	rec := &Record{
		ContentID:     identity.Hash(rawContentID),
		ContentType:   contentType,
		CharacterName: payload.CharacterName,
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to set content: %w", err)
	}
	return rec, nil
}

// Observe records a content identity unless its hash is already known.
// Concurrent observers may both insert; readers take the oldest record.
func (s *Service) Observe(ctx context.Context, rawContentID, contentType, name string) error {
	if rawContentID == "" || name == "" {
		return nil
	}
	existing, err := s.Get(ctx, identity.Hash(rawContentID))
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	if _, err := s.Set(ctx, rawContentID, contentType, Payload{CharacterName: name}); err != nil {
		return err
	}
	s.logger.Debug("Content identity recorded", zap.String("content_type", contentType))
	return nil
}
