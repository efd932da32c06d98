// Package keylock serializes work per key inside one process.
//
// Locks are reference counted and dropped when the last holder releases them,
// so the map only ever holds keys that are currently contended. Waiting for a
// key honours the caller's context.
package keylock

import (
	"context"
	"sync"
)

type lockEntry struct {
	// sem holds one token while the key is locked.
	sem  chan struct{}
	refs int
}

// Map hands out one lock per key.
type Map[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*lockEntry
}

// New creates an empty lock map.
func New[K comparable]() *Map[K] {
	return &Map[K]{locks: make(map[K]*lockEntry)}
}

// Lock blocks until key is held by the caller and returns its release
// function. It gives up with ctx.Err() when ctx ends first.
func (m *Map[K]) Lock(ctx context.Context, key K) (unlock func(), err error) {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		e = &lockEntry{sem: make(chan struct{}, 1)}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		m.release(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			m.release(key, e)
		})
	}, nil
}

func (m *Map[K]) release(key K, e *lockEntry) {
	m.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()
}

// Len returns the number of keys currently held or waited on.
func (m *Map[K]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
