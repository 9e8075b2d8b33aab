// Package store provides a durable string-keyed store backed by JSON
// files in the application data directory. It is the persistence layer
// under the catalog cache, the recent-search list, and the watchlist.
//
// Writes are best effort: a failed Set or Remove is logged and
// swallowed, so callers see a cache miss on the next read instead of a
// propagating fault.
package store

import (
	"fmt"
	"hash/fnv"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Store persists opaque values under string keys, one file per key.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a Store rooted at dir, creating it if needed.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Get returns the value stored under key, or false if absent.
func (s *Store) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores value under key. Failures (e.g. disk full) are logged and
// swallowed; the entry simply stays absent.
func (s *Store) Set(key string, value []byte) {
	if err := os.WriteFile(s.path(key), value, 0o600); err != nil {
		s.logger.Warn("store write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// Remove deletes the value stored under key, if any.
func (s *Store) Remove(key string) {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		s.logger.Warn("store remove failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// Clear deletes every entry in the store.
func (s *Store) Clear() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("store clear failed", slog.String("error", err.Error()))
		return
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			s.logger.Warn("store clear failed",
				slog.String("entry", e.Name()),
				slog.String("error", err.Error()),
			)
		}
	}
}

// path maps a key to a file name. The sanitized key keeps entries
// readable on disk; the hash suffix keeps distinct keys distinct after
// sanitization.
func (s *Store) path(key string) string {
	h := fnv.New32a()
	h.Write([]byte(key))

	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '-'
		}
	}, key)
	if len(sanitized) > 80 {
		sanitized = sanitized[:80]
	}

	return filepath.Join(s.dir, fmt.Sprintf("%s-%08x.json", sanitized, h.Sum32()))
}
