package sources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"market-board/core/identity"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUnknownSource is returned when no trusted source matches an API key.
var ErrUnknownSource = errors.New("unknown upload source")

// Service manages trusted upload sources and the uploader blacklist.
type Service struct {
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new sources service.
func NewService(logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{logger: logger, db: db}
}

// Authenticate looks up the source owning the raw API key.
func (s *Service) Authenticate(ctx context.Context, apiKey string) (*TrustedSource, error) {
	if apiKey == "" {
		return nil, ErrUnknownSource
	}
	var src TrustedSource
	err := s.db.WithContext(ctx).
		Where("api_key = ?", identity.HashAPIKey(apiKey)).
		Take(&src).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownSource
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up source: %w", err)
	}
	return &src, nil
}

// IncrementUploadCount atomically bumps the accepted-upload counter of a source.
func (s *Service) IncrementUploadCount(ctx context.Context, sourceID uint) error {
	res := s.db.WithContext(ctx).
		Model(&TrustedSource{}).
		Where("id = ?", sourceID).
		UpdateColumn("upload_count", gorm.Expr("upload_count + ?", 1))
	if res.Error != nil {
		return fmt.Errorf("failed to increment upload count: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUnknownSource
	}
	return nil
}

// IsBlacklisted reports whether the hashed uploader ID is banned.
func (s *Service) IsBlacklisted(ctx context.Context, uploaderIDHash string) (bool, error) {
	if uploaderIDHash == "" {
		return false, nil
	}
	var count int64
	err := s.db.WithContext(ctx).
		Model(&BlacklistEntry{}).
		Where("uploader_id = ?", uploaderIDHash).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return count > 0, nil
}

// AddSource provisions a new trusted source and returns its raw API key. The
// key is not recoverable afterwards.
func (s *Service) AddSource(ctx context.Context, name string) (string, *TrustedSource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, errors.New("source name is required")
	}

	key := strings.ReplaceAll(uuid.NewString(), "-", "")
	src := &TrustedSource{
		APIKey:     identity.HashAPIKey(key),
		SourceName: name,
	}
	if err := s.db.WithContext(ctx).Create(src).Error; err != nil {
		return "", nil, fmt.Errorf("failed to create source: %w", err)
	}

	s.logger.Info("Trusted source provisioned", zap.String("source", name), zap.Uint("id", src.ID))
	return key, src, nil
}

// ListSources returns all trusted sources ordered by name.
func (s *Service) ListSources(ctx context.Context) ([]TrustedSource, error) {
	var out []TrustedSource
	if err := s.db.WithContext(ctx).Order("source_name").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	return out, nil
}

// Ban blacklists a raw uploader ID. Banning twice is a no-op.
func (s *Service) Ban(ctx context.Context, rawUploaderID string) (string, error) {
	rawUploaderID = strings.TrimSpace(rawUploaderID)
	if rawUploaderID == "" || rawUploaderID == "0" {
		return "", errors.New("uploader id is required")
	}

	hash := identity.Hash(rawUploaderID)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "uploader_id"}}, DoNothing: true}).
		Create(&BlacklistEntry{UploaderID: hash}).Error
	if err != nil {
		return "", fmt.Errorf("failed to blacklist uploader: %w", err)
	}

	s.logger.Info("Uploader blacklisted", zap.String("uploader_id_hash", hash))
	return hash, nil
}
