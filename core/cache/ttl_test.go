package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"market-board/core/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type key struct {
	scope string
	n     int
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestTTL_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	c := cache.NewTTL[key, string](time.Minute).WithClock(clock.Now)

	c.Set(key{"dc:Aether", 50}, "cached")

	v, ok := c.Get(key{"dc:Aether", 50})
	assert.True(t, ok)
	assert.Equal(t, "cached", v)

	_, ok = c.Get(key{"dc:Aether", 20})
	assert.False(t, ok, "different structured key must miss")

	clock.Advance(59 * time.Second)
	_, ok = c.Get(key{"dc:Aether", 50})
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = c.Get(key{"dc:Aether", 50})
	assert.False(t, ok, "entry expires after the TTL")
}

func TestTTL_ZeroDisables(t *testing.T) {
	c := cache.NewTTL[key, int](0)
	c.Set(key{"a", 1}, 1)
	_, ok := c.Get(key{"a", 1})
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestTTL_GetOrLoad(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	c := cache.NewTTL[key, int](time.Minute).WithClock(clock.Now)

	var calls int32
	load := func(context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	v, err := c.GetOrLoad(context.Background(), key{"all", 10}, load)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = c.GetOrLoad(context.Background(), key{"all", 10}, load)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "served from cache")

	clock.Advance(2 * time.Minute)
	v, err = c.GetOrLoad(context.Background(), key{"all", 10}, load)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "reloaded after expiry")
}

func TestTTL_GetOrLoadErrorNotCached(t *testing.T) {
	c := cache.NewTTL[key, int](time.Minute)

	_, err := c.GetOrLoad(context.Background(), key{"x", 1}, func(context.Context) (int, error) {
		return 0, assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	v, err := c.GetOrLoad(context.Background(), key{"x", 1}, func(context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestTTL_ConcurrentLoadsCollapse(t *testing.T) {
	c := cache.NewTTL[key, int](time.Minute)

	var calls int32
	release := make(chan struct{})
	load := func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrLoad(context.Background(), key{"burst", 1}, load)
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	v, ok := c.Get(key{"burst", 1})
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}
