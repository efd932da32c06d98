package market

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"market-board/core/database"
	"market-board/core/identity"
	"market-board/core/worlds"
	"market-board/core/worlds/worldstest"
	"market-board/feature/market/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	gilgamesh = 63
	jenova    = 40
	asura     = 23
	potion    = 4551
)

func setupService(t *testing.T) *Service {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &models.MarketRecord{}, &models.HistoryRecord{}))
	return NewService(zap.NewNop(), db, worldstest.Resolver(), Config{})
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func listing(price, qty int64) models.Listing {
	return models.Listing{PricePerUnit: price, Quantity: qty, RetainerName: "Seller"}
}

func loadMarket(t *testing.T, s *Service, key Key) models.MarketRecord {
	var rec models.MarketRecord
	require.NoError(t, whereKey(s.db, key).Take(&rec).Error)
	return rec
}

func TestMergeListings(t *testing.T) {
	existing := []models.Listing{
		{PricePerUnit: 100, WorldName: "Gilgamesh", RetainerName: "old-g"},
		{PricePerUnit: 150, WorldName: "Jenova", RetainerName: "j1"},
		{PricePerUnit: 300, WorldName: "Gilgamesh", RetainerName: "old-g2"},
	}
	incoming := []models.Listing{
		{PricePerUnit: 150, WorldName: "Gilgamesh", RetainerName: "new-g1"},
		{PricePerUnit: 50, WorldName: "Gilgamesh", RetainerName: "new-g2"},
	}

	merged := mergeListings(existing, "Gilgamesh", incoming)

	names := make([]string, len(merged))
	for i, l := range merged {
		names[i] = l.RetainerName
	}
	// Equal prices keep arrival order: Jenova's listing was there first.
	assert.Equal(t, []string{"new-g2", "j1", "new-g1"}, names)
}

func TestAppendHistory(t *testing.T) {
	existing := []models.HistoryEntry{{Timestamp: 10}, {Timestamp: 30}}
	incoming := []models.HistoryEntry{{Timestamp: 20}, {Timestamp: 40}}

	t.Run("Under Limit", func(t *testing.T) {
		out := appendHistory(existing, incoming, 10)
		require.Len(t, out, 4)
		assert.Equal(t, int64(10), out[0].Timestamp)
		assert.Equal(t, int64(40), out[3].Timestamp)
	})

	t.Run("Trimmed To Newest", func(t *testing.T) {
		out := appendHistory(existing, incoming, 3)
		require.Len(t, out, 3)
		assert.Equal(t, []int64{40, 30, 20}, []int64{out[0].Timestamp, out[1].Timestamp, out[2].Timestamp})
	})
}

func TestApplyListings_SortedWithTotals(t *testing.T) {
	ctx := context.Background()
	s := setupService(t)

	res, err := s.ApplyListings(ctx, potion, gilgamesh, Attribution{SourceName: "test", UploaderIDHash: identity.Hash("u1")},
		[]models.Listing{listing(300, 2), listing(100, 5), listing(200, 1)})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, "Aether", res.Location.DCName)

	rec := loadMarket(t, s, Key{ItemID: potion, DCName: "Aether"})
	require.Len(t, rec.Listings, 3)
	for i, l := range rec.Listings {
		if i > 0 {
			assert.LessOrEqual(t, rec.Listings[i-1].PricePerUnit, l.PricePerUnit)
		}
		assert.Equal(t, l.PricePerUnit*l.Quantity, l.Total)
		assert.Equal(t, "Gilgamesh", l.WorldName)
		assert.Equal(t, gilgamesh, l.WorldID)
		assert.Equal(t, "test", l.SourceName)
		assert.Equal(t, identity.Hash("u1"), l.UploaderIDHash)
	}
}

func TestApplyListings_ReplacesOnlyUploadingWorld(t *testing.T) {
	ctx := context.Background()
	s := setupService(t)

	_, err := s.ApplyListings(ctx, potion, gilgamesh, Attribution{}, []models.Listing{listing(100, 1), listing(120, 1)})
	require.NoError(t, err)
	_, err = s.ApplyListings(ctx, potion, jenova, Attribution{}, []models.Listing{listing(110, 1)})
	require.NoError(t, err)
	_, err = s.ApplyListings(ctx, potion, gilgamesh, Attribution{}, []models.Listing{listing(500, 1)})
	require.NoError(t, err)

	rec := loadMarket(t, s, Key{ItemID: potion, DCName: "Aether"})
	require.Len(t, rec.Listings, 2)
	assert.Equal(t, "Jenova", rec.Listings[0].WorldName)
	assert.Equal(t, int64(110), rec.Listings[0].PricePerUnit)
	assert.Equal(t, "Gilgamesh", rec.Listings[1].WorldName)
	assert.Equal(t, int64(500), rec.Listings[1].PricePerUnit)

	// An empty upload clears the world's slice.
	_, err = s.ApplyListings(ctx, potion, gilgamesh, Attribution{}, nil)
	require.NoError(t, err)
	rec = loadMarket(t, s, Key{ItemID: potion, DCName: "Aether"})
	require.Len(t, rec.Listings, 1)
	assert.Equal(t, "Jenova", rec.Listings[0].WorldName)
}

func TestApplyListings_UngroupedWorldOwnsRecord(t *testing.T) {
	ctx := context.Background()
	s := setupService(t)

	res, err := s.ApplyListings(ctx, potion, asura, Attribution{}, []models.Listing{listing(10, 1)})
	require.NoError(t, err)
	assert.Empty(t, res.Location.DCName)

	rec := loadMarket(t, s, Key{ItemID: potion, WorldID: asura})
	assert.Len(t, rec.Listings, 1)
}

func TestApplyListings_LastUploadTimeMonotonic(t *testing.T) {
	ctx := context.Background()
	s := setupService(t)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	_, err := s.ApplyListings(ctx, potion, gilgamesh, Attribution{}, []models.Listing{listing(1, 1)})
	require.NoError(t, err)

	// A clock step backwards must not move the record back in time.
	s.now = func() time.Time { return base.Add(-time.Minute) }
	res, err := s.ApplyListings(ctx, potion, jenova, Attribution{}, []models.Listing{listing(2, 1)})
	require.NoError(t, err)
	assert.Equal(t, base.UnixMilli(), res.LastUploadTime)

	s.now = func() time.Time { return base.Add(time.Minute) }
	res, err = s.ApplyListings(ctx, potion, jenova, Attribution{}, []models.Listing{listing(2, 1)})
	require.NoError(t, err)
	assert.Equal(t, base.Add(time.Minute).UnixMilli(), res.LastUploadTime)
}

func TestApplyListings_LockWaitCancelled(t *testing.T) {
	s := setupService(t)

	unlock, err := s.locks.Lock(context.Background(), lockKey{Key: Key{ItemID: potion, DCName: "Aether"}})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.ApplyListings(ctx, potion, jenova, Attribution{}, []models.Listing{listing(100, 1)})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	assert.Zero(t, s.locks.Len())

	var count int64
	require.NoError(t, s.db.Model(&models.MarketRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApplyListings_ConcurrentWorlds(t *testing.T) {
	ctx := context.Background()
	s := setupService(t)

	worldIDs := []int{54, 63, 65, 99, 40, 79}
	var wg sync.WaitGroup
	for _, w := range worldIDs {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			_, err := s.ApplyListings(ctx, potion, w, Attribution{}, []models.Listing{listing(int64(w), 1), listing(int64(w)+1, 1)})
			assert.NoError(t, err)
		}(w)
	}
	wg.Wait()

	rec := loadMarket(t, s, Key{ItemID: potion, DCName: "Aether"})
	assert.Len(t, rec.Listings, 2*len(worldIDs))
	assert.Zero(t, s.locks.Len())
}

func TestApplyHistory_Accumulates(t *testing.T) {
	ctx := context.Background()
	s := setupService(t)

	entries := []models.HistoryEntry{{PricePerUnit: 100, Quantity: 2, Timestamp: 1000, BuyerName: "A"}}
	_, err := s.ApplyHistory(ctx, potion, gilgamesh, Attribution{}, entries)
	require.NoError(t, err)
	_, err = s.ApplyHistory(ctx, potion, gilgamesh, Attribution{}, entries)
	require.NoError(t, err)

	var rec models.HistoryRecord
	require.NoError(t, whereKey(s.db, Key{ItemID: potion, DCName: "Aether"}).Take(&rec).Error)
	require.Len(t, rec.Entries, 2)
	assert.Equal(t, int64(200), rec.Entries[0].Total)
	assert.Equal(t, "Gilgamesh", rec.Entries[1].WorldName)
}

func TestApplyHistory_StoreLimit(t *testing.T) {
	ctx := context.Background()
	s := setupService(t)
	s.cfg.HistoryStoreLimit = 3

	for ts := int64(1); ts <= 5; ts++ {
		_, err := s.ApplyHistory(ctx, potion, gilgamesh, Attribution{}, []models.HistoryEntry{{PricePerUnit: 1, Quantity: 1, Timestamp: ts}})
		require.NoError(t, err)
	}

	var rec models.HistoryRecord
	require.NoError(t, whereKey(s.db, Key{ItemID: potion, DCName: "Aether"}).Take(&rec).Error)
	require.Len(t, rec.Entries, 3)
	for _, e := range rec.Entries {
		assert.GreaterOrEqual(t, e.Timestamp, int64(3))
	}
}

func TestApplyListings_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	s := NewService(zap.NewNop(), db, worldstest.Resolver(), Config{})

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `market_records`").WillReturnError(errors.New("deadlock found"))
	mock.ExpectRollback()

	_, err := s.ApplyListings(context.Background(), potion, gilgamesh, Attribution{}, []models.Listing{listing(1, 1)})
	assert.ErrorContains(t, err, "deadlock found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, Key{ItemID: 1, DCName: "Aether"}, KeyFor(1, worlds.Location{WorldID: 63, WorldName: "Gilgamesh", DCName: "Aether"}))
	assert.Equal(t, Key{ItemID: 1, WorldID: 23}, KeyFor(1, worlds.Location{WorldID: 23, WorldName: "Asura"}))
}
