// Package cache provides a small in-process TTL cache for read paths that can
// tolerate bounded staleness.
//
// Entries are keyed by a comparable struct rather than a concatenated string,
// expire after a fixed TTL and are never invalidated explicitly. Concurrent
// misses for the same key are collapsed with singleflight so a burst of
// identical requests reaches the store once.
//
// # Usage
//
//	c := cache.NewTTL[queryKey, []Pair](time.Minute)
//	pairs, err := c.GetOrLoad(ctx, queryKey{scope, 50}, func(ctx context.Context) ([]Pair, error) {
//	    return store.Load(ctx, scope, 50)
//	})
package cache
