package stats

import (
	"context"
	"fmt"
	"time"

	"market-board/core/cache"
	"market-board/core/worlds"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dayLayout formats the UTC day buckets of the upload counter.
const dayLayout = "2006-01-02"

type rankingKind uint8

const (
	mostRecent rankingKind = iota + 1
	leastRecent
)

// rankingKey identifies a cached ranking.
type rankingKey struct {
	kind  rankingKind
	scope worlds.Selector
	n     int
}

// Service maintains the recency index and the daily upload counter.
type Service struct {
	logger   *zap.Logger
	db       *gorm.DB
	cfg      Config
	rankings *cache.TTL[rankingKey, []WorldItemPair]
	now      func() time.Time
}

// NewService creates a new stats service.
func NewService(logger *zap.Logger, db *gorm.DB, cfg Config) *Service {
	cfg = cfg.withDefaults()
	return &Service{
		logger:   logger,
		db:       db,
		cfg:      cfg,
		rankings: cache.NewTTL[rankingKey, []WorldItemPair](time.Duration(cfg.CacheTTLSeconds) * time.Second),
		now:      time.Now,
	}
}

// Touch marks an item as updated now on a world.
func (s *Service) Touch(ctx context.Context, itemID int, loc worlds.Location) error {
	row := RecentUpdate{
		ItemID:         itemID,
		WorldID:        loc.WorldID,
		WorldName:      loc.WorldName,
		DCName:         loc.DCName,
		LastUploadTime: s.now().UnixMilli(),
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}, {Name: "world_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"world_name", "dc_name", "last_upload_time"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to touch recent update: %w", err)
	}
	return nil
}

// MostRecentlyUpdated returns up to n items ordered newest first, optionally
// scoped to a world or datacenter. Results may be up to the cache TTL old.
func (s *Service) MostRecentlyUpdated(ctx context.Context, scope worlds.Selector, n int) ([]WorldItemPair, error) {
	return s.ranking(ctx, mostRecent, scope, n)
}

// LeastRecentlyUpdated returns up to n items ordered oldest first.
func (s *Service) LeastRecentlyUpdated(ctx context.Context, scope worlds.Selector, n int) ([]WorldItemPair, error) {
	return s.ranking(ctx, leastRecent, scope, n)
}

func (s *Service) ranking(ctx context.Context, kind rankingKind, scope worlds.Selector, n int) ([]WorldItemPair, error) {
	key := rankingKey{kind: kind, scope: scope, n: s.cfg.clampEntries(n)}
	return s.rankings.GetOrLoad(ctx, key, func(ctx context.Context) ([]WorldItemPair, error) {
		return s.loadRanking(ctx, key)
	})
}

// scoped restricts the recency index to a world or datacenter.
func (s *Service) scoped(ctx context.Context, scope worlds.Selector) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&RecentUpdate{})
	if id, ok := scope.WorldID(); ok {
		q = q.Where("world_id = ?", id)
	} else if dc, ok := scope.DataCenter(); ok {
		q = q.Where("dc_name = ?", dc)
	}
	return q
}

// loadRanking ranks distinct items by their latest update within the scope
// and reports the world each item was last updated on.
func (s *Service) loadRanking(ctx context.Context, key rankingKey) ([]WorldItemPair, error) {
	order := "MAX(last_upload_time) DESC"
	if key.kind == leastRecent {
		order = "MAX(last_upload_time) ASC"
	}

	var latest []struct {
		ItemID         int
		LastUploadTime int64
	}
	err := s.scoped(ctx, key.scope).
		Select("item_id, MAX(last_upload_time) AS last_upload_time").
		Group("item_id").
		Order(order).Order("item_id").
		Limit(key.n).
		Scan(&latest).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank recent updates: %w", err)
	}
	if len(latest) == 0 {
		return []WorldItemPair{}, nil
	}

	ids := make([]int, len(latest))
	for i, l := range latest {
		ids[i] = l.ItemID
	}
	var rows []RecentUpdate
	err = s.scoped(ctx, key.scope).
		Where("item_id IN ?", ids).
		Order("world_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query recent updates: %w", err)
	}

	// Newest row per item, lowest world on ties.
	newest := make(map[int]RecentUpdate, len(latest))
	for _, r := range rows {
		if cur, ok := newest[r.ItemID]; !ok || r.LastUploadTime > cur.LastUploadTime {
			newest[r.ItemID] = r
		}
	}

	out := make([]WorldItemPair, 0, len(latest))
	for _, l := range latest {
		r, ok := newest[l.ItemID]
		if !ok {
			continue
		}
		out = append(out, WorldItemPair{
			ItemID:         r.ItemID,
			WorldID:        r.WorldID,
			WorldName:      r.WorldName,
			DCName:         r.DCName,
			LastUploadTime: r.LastUploadTime,
		})
	}
	return out, nil
}

// IncrementDailyUploads adds one to the current UTC day's upload count.
func (s *Service) IncrementDailyUploads(ctx context.Context) error {
	row := DailyUploadCount{Date: s.now().UTC().Format(dayLayout), UploadCount: 1}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.Assignments(map[string]any{"upload_count": gorm.Expr("upload_count + 1")}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to increment daily uploads: %w", err)
	}
	return nil
}

// DailyUploads returns the upload counts of the last days UTC days, today
// first. Days without uploads are reported as zero.
func (s *Service) DailyUploads(ctx context.Context, days int) ([]int64, error) {
	days = s.cfg.clampDays(days)
	today := s.now().UTC()

	dates := make([]string, days)
	for i := range dates {
		dates[i] = today.AddDate(0, 0, -i).Format(dayLayout)
	}

	var rows []DailyUploadCount
	if err := s.db.WithContext(ctx).Where("date IN ?", dates).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query daily uploads: %w", err)
	}
	byDate := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r.UploadCount
	}

	out := make([]int64, days)
	for i, d := range dates {
		out[i] = byDate[d]
	}
	return out, nil
}
