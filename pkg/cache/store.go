// Package cache provides a read-through cache for idempotent read
// endpoints. Values are keyed by the normalized request signature and
// expire after a per-endpoint-class TTL; writers bust stale reads with
// prefix-based invalidation. The backing store being unavailable is never
// fatal: every operation degrades to a miss or a no-op.
package cache

import (
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned by Store.Get when no live entry exists for a key
var ErrNotFound = errors.New("cache entry not found")

// Store is the backing key-value store contract: atomic get, set with
// expiry and prefix deletion
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	DeletePrefix(prefix string) error
	Close() error
}

// BadgerStore implements Store over a Badger database. Entry expiry uses
// Badger's native per-entry TTL, so an expired entry is a miss without any
// bookkeeping on our side.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens a Badger-backed store at path; an empty path with
// inMemory set keeps entries in memory only (used in tests and for
// cache-less deployments)
func NewBadgerStore(path string, inMemory bool) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Get returns the live value for key, ErrNotFound on miss or expiry
func (s *BadgerStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key with the given TTL
func (s *BadgerStore) Set(key string, value []byte, ttl time.Duration) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), value).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// DeletePrefix force-evicts every entry whose key starts with prefix,
// regardless of expiry
func (s *BadgerStore) DeletePrefix(prefix string) error {
	if err := s.db.DropPrefix([]byte(prefix)); err != nil {
		return fmt.Errorf("delete prefix %s: %w", prefix, err)
	}
	return nil
}

// Close closes the underlying database
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// NoopStore is the degraded fallback when no backing store is available:
// every read misses and every write is silently dropped
type NoopStore struct{}

// Get always reports a miss
func (NoopStore) Get(string) ([]byte, error) { return nil, ErrNotFound }

// Set drops the value
func (NoopStore) Set(string, []byte, time.Duration) error { return nil }

// DeletePrefix does nothing
func (NoopStore) DeletePrefix(string) error { return nil }

// Close does nothing
func (NoopStore) Close() error { return nil }
