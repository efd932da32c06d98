package upload

import (
	"context"
	"errors"
	"fmt"

	"market-board/core/worlds"
	"market-board/feature/content"
	"market-board/feature/market"
	"market-board/feature/market/models"
	"market-board/feature/sources"

	"go.uber.org/zap"
)

// Sources authenticates upload clients and counts their uploads.
type Sources interface {
	Blacklist
	Authenticate(ctx context.Context, apiKey string) (*sources.TrustedSource, error)
	IncrementUploadCount(ctx context.Context, sourceID uint) error
}

// Aggregator merges validated uploads into the market records.
type Aggregator interface {
	ApplyListings(ctx context.Context, itemID, worldID int, attr market.Attribution, listings []models.Listing) (market.Result, error)
	ApplyHistory(ctx context.Context, itemID, worldID int, attr market.Attribution, entries []models.HistoryEntry) (market.Result, error)
}

// Recorder maintains the recency index and upload statistics.
type Recorder interface {
	Touch(ctx context.Context, itemID int, loc worlds.Location) error
	IncrementDailyUploads(ctx context.Context) error
}

// ContentObserver records character and retainer identities.
type ContentObserver interface {
	Observe(ctx context.Context, rawContentID, contentType, name string) error
}

// Request is an inbound upload before any validation.
type Request struct {
	APIKey      string
	ContentType string
	Body        []byte
}

// Receipt describes an accepted upload.
type Receipt struct {
	Source string
	Kind   string
	Result market.Result
}

const (
	KindListings = "listings"
	KindEntries  = "entries"
)

// Service runs the upload pipeline.
type Service struct {
	logger     *zap.Logger
	sources    Sources
	aggregator Aggregator
	recorder   Recorder
	content    ContentObserver
}

// NewService creates a new upload service.
func NewService(logger *zap.Logger, src Sources, agg Aggregator, rec Recorder, obs ContentObserver) *Service {
	return &Service{
		logger:     logger,
		sources:    src,
		aggregator: agg,
		recorder:   rec,
		content:    obs,
	}
}

// Process validates, authenticates and applies an upload. Once the market
// write succeeds the side effects run independently: their failures are
// logged and never fail or roll back the upload.
func (s *Service) Process(ctx context.Context, l *zap.Logger, req Request) (*Receipt, error) {
	if err := ValidatePreCast(req.APIKey, req.ContentType); err != nil {
		return nil, err
	}

	src, err := s.sources.Authenticate(ctx, req.APIKey)
	if errors.Is(err, sources.ErrUnknownSource) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	payload, err := ParsePayload(req.Body)
	if err != nil {
		return nil, err
	}
	up, err := Validate(ctx, payload, s.sources)
	if err != nil {
		return nil, err
	}

	hdr := HeaderOf(up)
	attr := market.Attribution{SourceName: src.SourceName, UploaderIDHash: hdr.UploaderIDHash()}
	l = l.With(
		zap.String("source", src.SourceName),
		zap.Int("item_id", hdr.ItemID),
		zap.Int("world_id", hdr.WorldID),
	)

	receipt := &Receipt{Source: src.SourceName}
	var retainers []Retainer

	switch u := up.(type) {
	case ListingsUpload:
		if payload.Has("entries") {
			l.Warn("Upload carries both listings and entries, entries ignored")
		}
		receipt.Kind = KindListings
		receipt.Result, err = s.aggregator.ApplyListings(ctx, hdr.ItemID, hdr.WorldID, attr, u.Listings)
		retainers = u.Retainers
	case EntriesUpload:
		receipt.Kind = KindEntries
		receipt.Result, err = s.aggregator.ApplyHistory(ctx, hdr.ItemID, hdr.WorldID, attr, u.Entries)
	default:
		return nil, fmt.Errorf("unexpected upload type %T", up)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to apply %s: %w", receipt.Kind, err)
	}

	s.sideEffects(ctx, l, src, hdr, receipt.Result, retainers)

	l.Info("Upload accepted", zap.String("kind", receipt.Kind), zap.Int("count", receipt.Result.Count))
	return receipt, nil
}

func (s *Service) sideEffects(ctx context.Context, l *zap.Logger, src *sources.TrustedSource, hdr Header, res market.Result, retainers []Retainer) {
	if err := s.recorder.Touch(ctx, hdr.ItemID, res.Location); err != nil {
		l.Error("Failed to update recency index", zap.Error(err))
	}
	if err := s.recorder.IncrementDailyUploads(ctx); err != nil {
		l.Error("Failed to update daily upload count", zap.Error(err))
	}
	if err := s.sources.IncrementUploadCount(ctx, src.ID); err != nil {
		l.Error("Failed to update source upload count", zap.Error(err))
	}

	if hdr.ContentID != nil && hdr.CharacterName != "" {
		if err := s.content.Observe(ctx, *hdr.ContentID, content.TypePlayer, hdr.CharacterName); err != nil {
			l.Error("Failed to record character identity", zap.Error(err))
		}
	}
	for _, r := range retainers {
		if err := s.content.Observe(ctx, r.RawID, content.TypeRetainer, r.Name); err != nil {
			l.Error("Failed to record retainer identity", zap.Error(err))
		}
	}
}
