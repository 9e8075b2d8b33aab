// Package watchlist persists the user's bookmarked movies through the
// durable store, namespaced per user.
package watchlist

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

// KV is the slice of the durable store the watchlist needs.
type KV interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// Watchlist is a bounded-free, newest-first bookmark list. All
// mutations persist immediately; a failed persist costs at most the
// bookmarks since the last successful write.
type Watchlist struct {
	kv        KV
	namespace string
	logger    *slog.Logger

	mu    sync.Mutex
	items []catalog.Movie
}

// New loads the watchlist for a namespace.
func New(kv KV, namespace string, logger *slog.Logger) *Watchlist {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Watchlist{kv: kv, namespace: namespace, logger: logger}
	w.load()
	return w
}

// Add front-inserts a movie. Re-adding an existing movie moves it to
// the front.
func (w *Watchlist) Add(m catalog.Movie) {
	w.mu.Lock()
	defer w.mu.Unlock()

	updated := []catalog.Movie{m}
	for _, existing := range w.items {
		if existing.ID != m.ID {
			updated = append(updated, existing)
		}
	}
	w.items = updated
	w.persist()
}

// Remove deletes a movie by id and reports whether it was present.
func (w *Watchlist) Remove(id int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, m := range w.items {
		if m.ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			w.persist()
			return true
		}
	}
	return false
}

// Contains reports whether a movie is bookmarked.
func (w *Watchlist) Contains(id int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, m := range w.items {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Items returns the bookmarks, newest first.
func (w *Watchlist) Items() []catalog.Movie {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]catalog.Movie, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Watchlist) persist() {
	data, err := json.Marshal(w.items)
	if err != nil {
		w.logger.Warn("failed to serialize watchlist", slog.String("error", err.Error()))
		return
	}
	w.kv.Set(w.key(), data)
}

func (w *Watchlist) load() {
	data, ok := w.kv.Get(w.key())
	if !ok {
		return
	}
	if err := json.Unmarshal(data, &w.items); err != nil {
		w.logger.Warn("discarding unreadable watchlist", slog.String("error", err.Error()))
		w.items = nil
	}
}

func (w *Watchlist) key() string {
	return w.namespace + "_watchlist"
}
