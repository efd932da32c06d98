package market

import (
	"time"

	"market-board/core/keylock"
	"market-board/core/worlds"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Key addresses one market or history record. Grouped worlds share their
// datacenter's record (WorldID 0), ungrouped worlds own one (DCName empty).
type Key struct {
	ItemID  int
	DCName  string
	WorldID int
}

// KeyFor returns the record key holding an item's data for a located world.
func KeyFor(itemID int, loc worlds.Location) Key {
	if loc.DCName != "" {
		return Key{ItemID: itemID, DCName: loc.DCName}
	}
	return Key{ItemID: itemID, WorldID: loc.WorldID}
}

// Service aggregates uploads into market and history records and answers
// queries over them.
type Service struct {
	logger   *zap.Logger
	db       *gorm.DB
	resolver *worlds.Resolver
	cfg      Config
	locks    *keylock.Map[lockKey]
	now      func() time.Time
}

// lockKey separates listing and history writers on the same record key.
type lockKey struct {
	Key
	history bool
}

// NewService creates a new market service.
func NewService(logger *zap.Logger, db *gorm.DB, resolver *worlds.Resolver, cfg Config) *Service {
	return &Service{
		logger:   logger,
		db:       db,
		resolver: resolver,
		cfg:      cfg.withDefaults(),
		locks:    keylock.New[lockKey](),
		now:      time.Now,
	}
}

// Resolver exposes the world resolver used by the service.
func (s *Service) Resolver() *worlds.Resolver {
	return s.resolver
}
