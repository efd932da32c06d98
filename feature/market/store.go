package market

import (
	"context"
	"errors"
	"fmt"

	"market-board/feature/market/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate adds a row lock on dialects that support it. sqlite serializes
// writers on its own.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func whereKey(tx *gorm.DB, key Key) *gorm.DB {
	return tx.Where("item_id = ? AND dc_name = ? AND world_id = ?", key.ItemID, key.DCName, key.WorldID)
}

// loadMarketForUpdate returns the record under key, or nil when absent.
func loadMarketForUpdate(tx *gorm.DB, key Key) (*models.MarketRecord, error) {
	var rec models.MarketRecord
	err := whereKey(forUpdate(tx), key).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load market record: %w", err)
	}
	return &rec, nil
}

func loadHistoryForUpdate(tx *gorm.DB, key Key) (*models.HistoryRecord, error) {
	var rec models.HistoryRecord
	err := whereKey(forUpdate(tx), key).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load history record: %w", err)
	}
	return &rec, nil
}

// upsertColumns makes a concurrent insert from another process degrade to an
// update of the payload columns instead of a unique violation.
func upsertColumns(cols ...string) clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}, {Name: "dc_name"}, {Name: "world_id"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}
}

func saveMarket(tx *gorm.DB, rec *models.MarketRecord) error {
	var err error
	if rec.ID == 0 {
		err = tx.Clauses(upsertColumns("listings", "world_uploads", "last_upload_time")).Create(rec).Error
	} else {
		err = tx.Model(rec).Select("listings", "world_uploads", "last_upload_time").Updates(rec).Error
	}
	if err != nil {
		return fmt.Errorf("failed to save market record: %w", err)
	}
	return nil
}

func saveHistory(tx *gorm.DB, rec *models.HistoryRecord) error {
	var err error
	if rec.ID == 0 {
		err = tx.Clauses(upsertColumns("entries", "world_uploads", "last_upload_time")).Create(rec).Error
	} else {
		err = tx.Model(rec).Select("entries", "world_uploads", "last_upload_time").Updates(rec).Error
	}
	if err != nil {
		return fmt.Errorf("failed to save history record: %w", err)
	}
	return nil
}

// findMarket loads the records of several items under one scope key (ItemID ignored).
func (s *Service) findMarket(ctx context.Context, scope Key, itemIDs []int) ([]models.MarketRecord, error) {
	var recs []models.MarketRecord
	err := s.db.WithContext(ctx).
		Where("item_id IN ? AND dc_name = ? AND world_id = ?", itemIDs, scope.DCName, scope.WorldID).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query market records: %w", err)
	}
	return recs, nil
}

func (s *Service) findHistory(ctx context.Context, scope Key, itemIDs []int) ([]models.HistoryRecord, error) {
	var recs []models.HistoryRecord
	err := s.db.WithContext(ctx).
		Where("item_id IN ? AND dc_name = ? AND world_id = ?", itemIDs, scope.DCName, scope.WorldID).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query history records: %w", err)
	}
	return recs, nil
}
