//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/philmade/gather-shop/internal/pkg/cache"
	"github.com/philmade/gather-shop/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrRefresh(t *testing.T) {
	ctx := context.Background()
	ttl := time.Minute

	t.Run("second call within TTL issues exactly one fetch", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := cache.NewStore(clk)
		calls := 0
		fetch := func(context.Context) (string, error) {
			calls++
			return "value", nil
		}

		v, fr, err := cache.GetOrRefresh(ctx, store, "k", ttl, fetch)
		require.NoError(t, err)
		assert.Equal(t, "value", v)
		assert.Equal(t, cache.Fresh, fr)

		clk.Add(30 * time.Second)
		v, _, err = cache.GetOrRefresh(ctx, store, "k", ttl, fetch)
		require.NoError(t, err)
		assert.Equal(t, "value", v)
		assert.Equal(t, 1, calls)
	})

	t.Run("expired entry refetches", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := cache.NewStore(clk)
		calls := 0
		fetch := func(context.Context) (int, error) {
			calls++
			return calls, nil
		}

		v, _, err := cache.GetOrRefresh(ctx, store, "k", ttl, fetch)
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		clk.Add(ttl + time.Second)
		v, fr, err := cache.GetOrRefresh(ctx, store, "k", ttl, fetch)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, cache.Fresh, fr)
	})

	t.Run("failed refresh after expiry returns stale value unchanged", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := cache.NewStore(clk)
		healthy := true
		fetch := func(context.Context) (string, error) {
			if !healthy {
				return "", assert.AnError
			}
			return "original", nil
		}

		_, _, err := cache.GetOrRefresh(ctx, store, "k", ttl, fetch)
		require.NoError(t, err)

		healthy = false
		clk.Add(ttl + time.Second)
		v, fr, err := cache.GetOrRefresh(ctx, store, "k", ttl, fetch)
		require.NoError(t, err)
		assert.Equal(t, "original", v)
		assert.Equal(t, cache.Stale, fr)
	})

	t.Run("failure with no previous entry propagates", func(t *testing.T) {
		store := cache.NewStore(clock.NewMockClock(time.Now()))
		_, _, err := cache.GetOrRefresh(ctx, store, "k", ttl, func(context.Context) (string, error) {
			return "", assert.AnError
		})
		require.Error(t, err)
	})

	t.Run("keys are independent", func(t *testing.T) {
		store := cache.NewStore(clock.NewMockClock(time.Now()))
		a, _, err := cache.GetOrRefresh(ctx, store, "a", ttl, func(context.Context) (string, error) { return "A", nil })
		require.NoError(t, err)
		b, _, err := cache.GetOrRefresh(ctx, store, "b", ttl, func(context.Context) (string, error) { return "B", nil })
		require.NoError(t, err)
		assert.Equal(t, "A", a)
		assert.Equal(t, "B", b)
		assert.Equal(t, 2, store.Len())
	})
}
