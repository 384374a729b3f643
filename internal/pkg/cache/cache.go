// Package cache is a TTL cache keyed by string with stale-on-error fallback.
//
// Entries never expire out of the map; a lookup past the TTL triggers a
// refetch, and a failed refetch falls back to the previous value when one
// exists. Concurrent refreshes of the same key may issue duplicate fetches;
// the last successful fetch wins.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/philmade/gather-shop/internal/pkg/clock"
)

// Freshness reports whether a returned value came from a live fetch (or an
// unexpired entry) or is stale data served because the refetch failed.
type Freshness int

const (
	Fresh Freshness = iota
	Stale
)

type entry struct {
	value     any
	fetchedAt time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   clock.Clock
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		entries: make(map[string]entry),
		clock:   clk,
	}
}

// GetOrRefresh returns the cached value for key while it is younger than ttl,
// otherwise invokes fetch. A successful fetch replaces the entry and resets
// its timestamp. A failed fetch returns the previous value marked Stale when
// one exists; the error propagates only when there is nothing to fall back to.
func GetOrRefresh[T any](ctx context.Context, s *Store, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, Freshness, error) {
	s.mu.Lock()
	e, ok := s.entries[key]
	now := s.clock.Now()
	s.mu.Unlock()

	if ok {
		if v, valid := e.value.(T); valid && now.Sub(e.fetchedAt) < ttl {
			return v, Fresh, nil
		}
	}

	value, err := fetch(ctx)
	if err != nil {
		if ok {
			if v, valid := e.value.(T); valid {
				slog.Warn("serving stale cache entry after failed refresh",
					"key", key, "age", now.Sub(e.fetchedAt), "error", err)
				return v, Stale, nil
			}
		}
		var zero T
		return zero, Fresh, err
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, fetchedAt: s.clock.Now()}
	s.mu.Unlock()

	return value, Fresh, nil
}

// Len reports the number of stored entries. Entries are never evicted; the
// key space stays small (products and their option combinations).
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
