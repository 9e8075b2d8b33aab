package watchlist

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

type memKV struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{entries: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *memKV) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAddAndContains(t *testing.T) {
	w := New(newMemKV(), "guest", testLogger())

	w.Add(catalog.Movie{ID: 550, Title: "Fight Club"})
	w.Add(catalog.Movie{ID: 603, Title: "The Matrix"})

	if !w.Contains(550) || !w.Contains(603) {
		t.Error("expected both movies bookmarked")
	}
	if w.Contains(27205) {
		t.Error("unexpected bookmark")
	}

	items := w.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != 603 {
		t.Errorf("expected newest first, got %d", items[0].ID)
	}
}

func TestReAddMovesToFront(t *testing.T) {
	w := New(newMemKV(), "guest", testLogger())

	w.Add(catalog.Movie{ID: 550, Title: "Fight Club"})
	w.Add(catalog.Movie{ID: 603, Title: "The Matrix"})
	w.Add(catalog.Movie{ID: 550, Title: "Fight Club"})

	items := w.Items()
	if len(items) != 2 {
		t.Fatalf("expected no duplicate, got %d items", len(items))
	}
	if items[0].ID != 550 {
		t.Errorf("expected re-added movie at front, got %d", items[0].ID)
	}
}

func TestRemove(t *testing.T) {
	w := New(newMemKV(), "guest", testLogger())

	w.Add(catalog.Movie{ID: 550, Title: "Fight Club"})

	if !w.Remove(550) {
		t.Error("expected removal of present movie to report true")
	}
	if w.Remove(550) {
		t.Error("expected removal of absent movie to report false")
	}
	if len(w.Items()) != 0 {
		t.Errorf("expected empty list, got %v", w.Items())
	}
}

func TestPersistsAcrossInstances(t *testing.T) {
	kv := newMemKV()

	w1 := New(kv, "guest", testLogger())
	w1.Add(catalog.Movie{ID: 550, Title: "Fight Club"})

	w2 := New(kv, "guest", testLogger())
	items := w2.Items()
	if len(items) != 1 || items[0].ID != 550 {
		t.Errorf("expected persisted watchlist, got %v", items)
	}
}

func TestNamespacesIsolated(t *testing.T) {
	kv := newMemKV()

	New(kv, "guest", testLogger()).Add(catalog.Movie{ID: 550})

	other := New(kv, "user42", testLogger())
	if len(other.Items()) != 0 {
		t.Errorf("expected empty watchlist for other namespace, got %v", other.Items())
	}
}

func TestUnreadablePersistedListDiscarded(t *testing.T) {
	kv := newMemKV()
	kv.Set("guest_watchlist", []byte("not json"))

	w := New(kv, "guest", testLogger())
	if len(w.Items()) != 0 {
		t.Errorf("expected empty watchlist, got %v", w.Items())
	}

	w.Add(catalog.Movie{ID: 550})
	if !w.Contains(550) {
		t.Error("expected watchlist usable after discard")
	}
}
