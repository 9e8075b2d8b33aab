// Package cache wraps a durable key-value store with a timestamp
// envelope and per-read expiration. Expired and corrupt entries behave
// exactly like absent ones, so a cache miss is always recoverable by
// refetching.
package cache

import (
	"encoding/json"
	"log/slog"
	"time"
)

// Store is the durable layer the cache writes through. Implemented by
// the file-backed store; tests substitute an in-memory map.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
	Clear()
}

// envelope is the persisted entry format.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // epoch millis at write
}

// Cache is a TTL cache over a Store.
type Cache struct {
	store  Store
	logger *slog.Logger

	// Clock returns the current time. Tests override it to simulate
	// the passage of time.
	Clock func() time.Time
}

// New creates a Cache over store.
func New(store Store, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		store:  store,
		logger: logger,
		Clock:  time.Now,
	}
}

// Read loads the entry under key into dst and reports whether a fresh
// entry was found. An entry older than ttl is treated as absent; it is
// left in place for the next write to overwrite. Corrupt entries are
// removed and treated as absent.
func (c *Cache) Read(key string, ttl time.Duration, dst any) bool {
	raw, ok := c.store.Get(key)
	if !ok {
		return false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Warn("discarding corrupt cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		c.store.Remove(key)
		return false
	}

	age := c.Clock().UnixMilli() - env.Timestamp
	if age < 0 || age >= ttl.Milliseconds() {
		return false
	}

	if err := json.Unmarshal(env.Data, dst); err != nil {
		c.logger.Warn("discarding unreadable cache payload",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		c.store.Remove(key)
		return false
	}
	return true
}

// Write stores v under key with the current timestamp. Serialization
// failures are logged and the entry is left untouched; the caller's
// result is unaffected either way.
func (c *Cache) Write(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("cache write skipped, payload not serializable",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	env := envelope{Data: data, Timestamp: c.Clock().UnixMilli()}
	raw, err := json.Marshal(env)
	if err != nil {
		c.logger.Warn("cache write skipped",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}
	c.store.Set(key, raw)
}

// Invalidate removes the entry under key.
func (c *Cache) Invalidate(key string) {
	c.store.Remove(key)
}

// Clear removes every entry in the underlying store.
func (c *Cache) Clear() {
	c.store.Clear()
}
