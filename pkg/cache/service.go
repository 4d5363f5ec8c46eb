package cache

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/singleflight"
)

// Loader produces the value for a key on cache miss
type Loader func(ctx context.Context) ([]byte, error)

// Service is the read-through wrapper. All store failures are absorbed:
// a failed get is a miss, a failed set or invalidate is a logged no-op,
// and the loader's result is always returned to the caller.
type Service struct {
	store        Store
	singleFlight bool
	group        singleflight.Group
}

// NewService creates a cache service over the given backing store. With
// singleFlight set, concurrent misses for the same key share one loader
// call instead of issuing redundant underlying reads.
func NewService(store Store, singleFlight bool) *Service {
	return &Service{store: store, singleFlight: singleFlight}
}

// Key builds a deterministic cache key from the request signature: path
// plus all query parameters, order-independent. Keys share the "feed:"
// namespace so feed-affecting writes can bust every parameterization at
// once.
func Key(path string, query url.Values) string {
	var sb strings.Builder
	sb.WriteString("feed:")
	sb.WriteString(path)

	if len(query) > 0 {
		keys := make([]string, 0, len(query))
		for k := range query {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("?")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString("&")
			}
			values := append([]string(nil), query[k]...)
			sort.Strings(values)
			for j, v := range values {
				if j > 0 {
					sb.WriteString("&")
				}
				sb.WriteString(k)
				sb.WriteString("=")
				sb.WriteString(v)
			}
		}
	}

	return sb.String()
}

// ReadThrough returns the cached value for key when present, otherwise
// invokes the loader, stores a successful result with the given TTL and
// returns it. The second return reports whether the value came from cache.
func (s *Service) ReadThrough(ctx context.Context, key string, ttl time.Duration, loader Loader) ([]byte, bool, error) {
	if value, err := s.store.Get(key); err == nil {
		return value, true, nil
	} else if !errors.Is(err, ErrNotFound) {
		lgr.Printf("[WARN] cache get failed for %s: %v", key, err)
	}

	load := func() ([]byte, error) {
		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if value != nil {
			if err := s.store.Set(key, value, ttl); err != nil {
				lgr.Printf("[WARN] cache set failed for %s: %v", key, err)
			}
		}
		return value, nil
	}

	if s.singleFlight {
		value, err, _ := s.group.Do(key, func() (interface{}, error) {
			return load()
		})
		if err != nil {
			return nil, false, err
		}
		return value.([]byte), false, nil
	}

	value, err := load()
	if err != nil {
		return nil, false, err
	}
	return value, false, nil
}

// Invalidate force-evicts all entries matching the key prefix. A failing
// backing store makes this a logged no-op.
func (s *Service) Invalidate(prefix string) {
	if err := s.store.DeletePrefix(prefix); err != nil {
		lgr.Printf("[WARN] cache invalidate failed for %s: %v", prefix, err)
	}
}

// Close releases the backing store
func (s *Service) Close() error {
	return s.store.Close()
}
