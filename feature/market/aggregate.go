package market

import (
	"context"
	"fmt"
	"sort"

	"market-board/core/worlds"
	"market-board/feature/market/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Attribution is stamped on every stored listing and sale.
type Attribution struct {
	SourceName     string
	UploaderIDHash string
}

// Result describes an applied upload.
type Result struct {
	ItemID   int
	Location worlds.Location
	Count    int
	// LastUploadTime is the record's upload time after the write, epoch ms.
	LastUploadTime int64
}

// ApplyListings replaces the uploading world's listings of an item with the
// given ones, keeps the other worlds' listings and re-sorts the record by
// unit price. Writes to the same record are serialized.
func (s *Service) ApplyListings(ctx context.Context, itemID, worldID int, attr Attribution, listings []models.Listing) (Result, error) {
	loc := s.resolver.Locate(worldID)
	key := KeyFor(itemID, loc)
	tagged := tagListings(listings, loc, attr)

	unlock, err := s.locks.Lock(ctx, lockKey{Key: key})
	if err != nil {
		return Result{}, fmt.Errorf("waiting for record lock: %w", err)
	}
	defer unlock()

	var res Result
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := loadMarketForUpdate(tx, key)
		if err != nil {
			return err
		}
		if rec == nil {
			rec = &models.MarketRecord{ItemID: key.ItemID, DCName: key.DCName, WorldID: key.WorldID}
		}

		now := s.now().UnixMilli()
		rec.Listings = mergeListings(rec.Listings, loc.WorldName, tagged)
		rec.WorldUploads = models.StampWorld(rec.WorldUploads, loc.WorldID, now)
		rec.LastUploadTime = max(rec.LastUploadTime, now)

		if err := saveMarket(tx, rec); err != nil {
			return err
		}
		res = Result{ItemID: itemID, Location: loc, Count: len(tagged), LastUploadTime: rec.LastUploadTime}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.logger.Debug("Listings applied",
		zap.Int("item_id", itemID),
		zap.String("world", loc.WorldName),
		zap.String("dc", loc.DCName),
		zap.Int("count", res.Count),
	)
	return res, nil
}

// ApplyHistory appends sales of the uploading world to an item's history and
// trims it to the newest HistoryStoreLimit entries.
func (s *Service) ApplyHistory(ctx context.Context, itemID, worldID int, attr Attribution, entries []models.HistoryEntry) (Result, error) {
	loc := s.resolver.Locate(worldID)
	key := KeyFor(itemID, loc)
	tagged := tagEntries(entries, loc, attr)

	unlock, err := s.locks.Lock(ctx, lockKey{Key: key, history: true})
	if err != nil {
		return Result{}, fmt.Errorf("waiting for record lock: %w", err)
	}
	defer unlock()

	var res Result
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rec, err := loadHistoryForUpdate(tx, key)
		if err != nil {
			return err
		}
		if rec == nil {
			rec = &models.HistoryRecord{ItemID: key.ItemID, DCName: key.DCName, WorldID: key.WorldID}
		}

		now := s.now().UnixMilli()
		rec.Entries = appendHistory(rec.Entries, tagged, s.cfg.HistoryStoreLimit)
		rec.WorldUploads = models.StampWorld(rec.WorldUploads, loc.WorldID, now)
		rec.LastUploadTime = max(rec.LastUploadTime, now)

		if err := saveHistory(tx, rec); err != nil {
			return err
		}
		res = Result{ItemID: itemID, Location: loc, Count: len(tagged), LastUploadTime: rec.LastUploadTime}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	s.logger.Debug("History applied",
		zap.Int("item_id", itemID),
		zap.String("world", loc.WorldName),
		zap.String("dc", loc.DCName),
		zap.Int("count", res.Count),
	)
	return res, nil
}

func tagListings(in []models.Listing, loc worlds.Location, attr Attribution) []models.Listing {
	out := make([]models.Listing, len(in))
	for i, l := range in {
		l.Total = l.PricePerUnit * l.Quantity
		l.WorldID = loc.WorldID
		l.WorldName = loc.WorldName
		l.SourceName = attr.SourceName
		l.UploaderIDHash = attr.UploaderIDHash
		if l.Materia == nil {
			l.Materia = []models.Materia{}
		}
		out[i] = l
	}
	return out
}

func tagEntries(in []models.HistoryEntry, loc worlds.Location, attr Attribution) []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(in))
	for i, e := range in {
		e.Total = e.PricePerUnit * e.Quantity
		e.WorldID = loc.WorldID
		e.WorldName = loc.WorldName
		e.SourceName = attr.SourceName
		e.UploaderIDHash = attr.UploaderIDHash
		out[i] = e
	}
	return out
}

// mergeListings drops every listing of worldName, appends incoming and sorts
// ascending by unit price. Equal prices keep their arrival order.
func mergeListings(existing []models.Listing, worldName string, incoming []models.Listing) []models.Listing {
	merged := make([]models.Listing, 0, len(existing)+len(incoming))
	for _, l := range existing {
		if l.WorldName != worldName {
			merged = append(merged, l)
		}
	}
	merged = append(merged, incoming...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PricePerUnit < merged[j].PricePerUnit
	})
	return merged
}

// appendHistory appends incoming to existing. When the result exceeds limit
// the oldest sales by timestamp are dropped; otherwise order is preserved.
func appendHistory(existing, incoming []models.HistoryEntry, limit int) []models.HistoryEntry {
	merged := make([]models.HistoryEntry, 0, len(existing)+len(incoming))
	merged = append(merged, existing...)
	merged = append(merged, incoming...)
	if limit <= 0 || len(merged) <= limit {
		return merged
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp > merged[j].Timestamp
	})
	return merged[:limit]
}
