package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"market-board/core/database"
	"market-board/core/worlds"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	gilgamesh = worlds.Location{WorldID: 63, WorldName: "Gilgamesh", DCName: "Aether"}
	jenova    = worlds.Location{WorldID: 40, WorldName: "Jenova", DCName: "Aether"}
	coeurl    = worlds.Location{WorldID: 74, WorldName: "Coeurl", DCName: "Primal"}
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func setupService(t *testing.T, cfg Config) (*Service, *clock) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &RecentUpdate{}, &DailyUploadCount{}))

	clk := &clock{t: time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)}
	s := NewService(zap.NewNop(), db, cfg)
	s.now = clk.now
	return s, clk
}

func touchAll(t *testing.T, s *Service, clk *clock) {
	ctx := context.Background()
	steps := []struct {
		item int
		loc  worlds.Location
	}{
		{1, gilgamesh},
		{2, jenova},
		{3, coeurl},
		{1, jenova},
	}
	for _, st := range steps {
		clk.t = clk.t.Add(time.Second)
		require.NoError(t, s.Touch(ctx, st.item, st.loc))
	}
}

func pairs(items []WorldItemPair) [][2]int {
	out := make([][2]int, len(items))
	for i, it := range items {
		out[i] = [2]int{it.ItemID, it.WorldID}
	}
	return out
}

func TestRankings(t *testing.T) {
	ctx := context.Background()
	s, clk := setupService(t, Config{CacheTTLSeconds: 0})
	touchAll(t, s, clk)

	t.Run("Most Recent Unscoped", func(t *testing.T) {
		got, err := s.MostRecentlyUpdated(ctx, worlds.Selector{}, 10)
		require.NoError(t, err)
		// Item 1 appears once, on the world it was last updated on.
		assert.Equal(t, [][2]int{{1, 40}, {3, 74}, {2, 40}}, pairs(got))
	})

	t.Run("Most Recent By Datacenter", func(t *testing.T) {
		got, err := s.MostRecentlyUpdated(ctx, worlds.ByDataCenter("Aether"), 10)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{1, 40}, {2, 40}}, pairs(got))
	})

	t.Run("Least Recent By Datacenter", func(t *testing.T) {
		got, err := s.LeastRecentlyUpdated(ctx, worlds.ByDataCenter("Aether"), 2)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{2, 40}, {1, 40}}, pairs(got))
	})

	t.Run("Least Recent Unscoped", func(t *testing.T) {
		got, err := s.LeastRecentlyUpdated(ctx, worlds.Selector{}, 10)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{2, 40}, {3, 74}, {1, 40}}, pairs(got))
	})

	t.Run("By World", func(t *testing.T) {
		got, err := s.MostRecentlyUpdated(ctx, worlds.ByWorld(40), 0)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{1, 40}, {2, 40}}, pairs(got))
		assert.Equal(t, "Jenova", got[0].WorldName)
	})

	t.Run("Touch Refreshes", func(t *testing.T) {
		clk.t = clk.t.Add(time.Minute)
		require.NoError(t, s.Touch(ctx, 1, gilgamesh))
		got, err := s.MostRecentlyUpdated(ctx, worlds.Selector{}, 1)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{1, 63}}, pairs(got))
	})
}

func TestRankings_Cached(t *testing.T) {
	ctx := context.Background()
	s, clk := setupService(t, Config{CacheTTLSeconds: 60})
	touchAll(t, s, clk)

	first, err := s.MostRecentlyUpdated(ctx, worlds.Selector{}, 10)
	require.NoError(t, err)
	require.Len(t, first, 3)

	require.NoError(t, s.Touch(ctx, 99, coeurl))

	// Within the TTL the cached ranking is served unchanged.
	again, err := s.MostRecentlyUpdated(ctx, worlds.Selector{}, 10)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// A different key is loaded fresh.
	other, err := s.MostRecentlyUpdated(ctx, worlds.Selector{}, 11)
	require.NoError(t, err)
	assert.Len(t, other, 4)
}

func TestConfig_Clamp(t *testing.T) {
	c := Config{}.withDefaults()
	assert.Equal(t, 50, c.clampEntries(0))
	assert.Equal(t, 200, c.clampEntries(5000))
	assert.Equal(t, 7, c.clampEntries(7))
	assert.Equal(t, 30, c.clampDays(-1))
	assert.Equal(t, 366, c.clampDays(1000))
}

func TestDailyUploads(t *testing.T) {
	ctx := context.Background()
	s, clk := setupService(t, Config{})

	// Two uploads on March 10th (UTC), one after midnight UTC.
	require.NoError(t, s.IncrementDailyUploads(ctx))
	require.NoError(t, s.IncrementDailyUploads(ctx))
	clk.t = clk.t.Add(time.Hour)
	require.NoError(t, s.IncrementDailyUploads(ctx))

	counts, err := s.DailyUploads(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 0}, counts)

	// Non-UTC clocks bucket by UTC day as well.
	// 08:00 JST on the 12th is still the 11th in UTC.
	clk.t = time.Date(2024, 3, 12, 8, 0, 0, 0, time.FixedZone("JST", 9*3600))
	require.NoError(t, s.IncrementDailyUploads(ctx))
	counts, err = s.DailyUploads(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 2}, counts)

	counts, err = s.DailyUploads(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, counts, 30)
}

func TestTouch_DatabaseError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	s := NewService(zap.NewNop(), db, Config{})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `recent_updates`").WillReturnError(errors.New("read-only"))
	mock.ExpectRollback()

	err = s.Touch(context.Background(), 1, gilgamesh)
	assert.ErrorContains(t, err, "read-only")
	assert.NoError(t, mock.ExpectationsWereMet())
}
