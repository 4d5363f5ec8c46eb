package cache

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore simulates a backing store that fails on every operation
type brokenStore struct{}

func (brokenStore) Get(string) ([]byte, error)              { return nil, errors.New("store down") }
func (brokenStore) Set(string, []byte, time.Duration) error { return errors.New("store down") }
func (brokenStore) DeletePrefix(string) error               { return errors.New("store down") }
func (brokenStore) Close() error                            { return nil }

func TestKey(t *testing.T) {
	t.Run("path only", func(t *testing.T) {
		assert.Equal(t, "feed:/feed", Key("/feed", nil))
	})

	t.Run("parameter order does not matter", func(t *testing.T) {
		a := Key("/feed", url.Values{"page": {"2"}, "limit": {"10"}})
		b := Key("/feed", url.Values{"limit": {"10"}, "page": {"2"}})
		assert.Equal(t, a, b)
		assert.Equal(t, "feed:/feed?limit=10&page=2", a)
	})

	t.Run("different parameters different keys", func(t *testing.T) {
		a := Key("/feed", url.Values{"page": {"1"}})
		b := Key("/feed", url.Values{"page": {"2"}})
		assert.NotEqual(t, a, b)
	})

	t.Run("repeated values sorted", func(t *testing.T) {
		key := Key("/feed", url.Values{"tag": {"z", "a"}})
		assert.Equal(t, "feed:/feed?tag=a&tag=z", key)
	})
}

func TestService_ReadThrough(t *testing.T) {
	svc := NewService(newTestStore(t), false)

	loads := 0
	loader := func(ctx context.Context) ([]byte, error) {
		loads++
		return []byte("assembled"), nil
	}

	t.Run("miss populates", func(t *testing.T) {
		value, hit, err := svc.ReadThrough(context.Background(), "feed:/feed", time.Minute, loader)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, []byte("assembled"), value)
		assert.Equal(t, 1, loads)
	})

	t.Run("second read hits", func(t *testing.T) {
		value, hit, err := svc.ReadThrough(context.Background(), "feed:/feed", time.Minute, loader)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, []byte("assembled"), value)
		assert.Equal(t, 1, loads, "loader not called on hit")
	})

	t.Run("loader error propagates", func(t *testing.T) {
		_, _, err := svc.ReadThrough(context.Background(), "feed:/other", time.Minute, func(ctx context.Context) ([]byte, error) {
			return nil, errors.New("assembly failed")
		})
		require.Error(t, err)

		// the failure was not cached
		value, hit, err := svc.ReadThrough(context.Background(), "feed:/other", time.Minute, loader)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, []byte("assembled"), value)
	})
}

func TestService_ReadThroughExpiry(t *testing.T) {
	svc := NewService(newTestStore(t), false)

	loads := 0
	loader := func(ctx context.Context) ([]byte, error) {
		loads++
		return []byte("fresh"), nil
	}

	_, hit, err := svc.ReadThrough(context.Background(), "feed:/feed", time.Second, loader)
	require.NoError(t, err)
	assert.False(t, hit)

	time.Sleep(2100 * time.Millisecond)

	_, hit, err = svc.ReadThrough(context.Background(), "feed:/feed", time.Second, loader)
	require.NoError(t, err)
	assert.False(t, hit, "expired entry misses and reloads")
	assert.Equal(t, 2, loads)
}

func TestService_Invalidate(t *testing.T) {
	svc := NewService(newTestStore(t), false)

	loads := 0
	loader := func(ctx context.Context) ([]byte, error) {
		loads++
		return []byte("v"), nil
	}

	_, _, err := svc.ReadThrough(context.Background(), "feed:/feed?page=1", time.Hour, loader)
	require.NoError(t, err)
	_, _, err = svc.ReadThrough(context.Background(), "feed:/feed?page=2", time.Hour, loader)
	require.NoError(t, err)
	require.Equal(t, 2, loads)

	svc.Invalidate("feed:")

	_, hit, err := svc.ReadThrough(context.Background(), "feed:/feed?page=1", time.Hour, loader)
	require.NoError(t, err)
	assert.False(t, hit, "invalidation evicts regardless of remaining TTL")
	assert.Equal(t, 3, loads)
}

func TestService_DegradedStore(t *testing.T) {
	svc := NewService(brokenStore{}, false)

	loads := 0
	loader := func(ctx context.Context) ([]byte, error) {
		loads++
		return []byte("direct"), nil
	}

	// every operation still serves the caller
	for i := 0; i < 3; i++ {
		value, hit, err := svc.ReadThrough(context.Background(), "feed:/feed", time.Minute, loader)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, []byte("direct"), value)
	}
	assert.Equal(t, 3, loads, "degraded cache loads on every read")

	// invalidation on a broken store is a no-op, not a failure
	svc.Invalidate("feed:")
}

func TestService_NoopStoreDegradation(t *testing.T) {
	svc := NewService(NoopStore{}, false)

	loads := 0
	loader := func(ctx context.Context) ([]byte, error) {
		loads++
		return []byte("direct"), nil
	}

	for i := 0; i < 2; i++ {
		value, hit, err := svc.ReadThrough(context.Background(), "feed:/feed", time.Minute, loader)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, []byte("direct"), value)
	}
	assert.Equal(t, 2, loads)
	assert.NoError(t, svc.Close())
}

func TestService_SingleFlight(t *testing.T) {
	svc := NewService(newTestStore(t), true)

	var loads int32
	loader := func(ctx context.Context) ([]byte, error) {
		atomic.AddInt32(&loads, 1)
		time.Sleep(50 * time.Millisecond)
		return []byte("shared"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, _, err := svc.ReadThrough(context.Background(), "feed:/feed", time.Minute, loader)
			assert.NoError(t, err)
			assert.Equal(t, []byte("shared"), value)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&loads), int32(2), "concurrent misses collapsed")
}
