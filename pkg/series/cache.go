package series

import (
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// CacheStats is a point-in-time snapshot of one series' coefficient cache.
type CacheStats struct {
	Hits    uint64 // lookups answered from the cache
	Misses  uint64 // lookups that had to compute or wait on a computation
	Entries int    // distinct indices stored
}

// memo caches computed coefficients for a single series. Each index is
// written once and never changes afterwards. Concurrent misses on the same
// index share a single computation.
type memo struct {
	mu     sync.RWMutex
	values map[int]float64
	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newMemo() *memo {
	return &memo{values: make(map[int]float64)}
}

func (m *memo) get(i int) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[i]
	return v, ok
}

// load returns the coefficient at i, calling compute at most once per index
// over the lifetime of the cache.
func (m *memo) load(i int, compute func(int) float64) float64 {
	if v, ok := m.get(i); ok {
		m.hits.Add(1)
		return v
	}
	m.misses.Add(1)

	v, _, _ := m.group.Do(strconv.Itoa(i), func() (any, error) {
		// Re-check: a previous flight for this key may have finished between
		// our lookup and joining the group.
		if v, ok := m.get(i); ok {
			return v, nil
		}
		v := compute(i)
		m.mu.Lock()
		m.values[i] = v
		m.mu.Unlock()
		return v, nil
	})
	return v.(float64)
}

func (m *memo) stats() CacheStats {
	m.mu.RLock()
	entries := len(m.values)
	m.mu.RUnlock()
	return CacheStats{
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Entries: entries,
	}
}
