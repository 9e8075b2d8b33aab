package store

import (
	"io"
	"log/slog"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestSetGet(t *testing.T) {
	s := newTestStore(t)

	s.Set("k", []byte(`{"a":1}`))
	got, ok := s.Get("k")
	if !ok {
		t.Fatal("expected value for k")
	}
	if string(got) != `{"a":1}` {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestGetAbsent(t *testing.T) {
	s := newTestStore(t)

	if _, ok := s.Get("never-written"); ok {
		t.Error("expected absent")
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)

	s.Set("k", []byte("v"))
	s.Remove("k")
	if _, ok := s.Get("k"); ok {
		t.Error("expected absent after remove")
	}

	// Removing a missing key is a no-op.
	s.Remove("missing")
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))
	s.Clear()

	if _, ok := s.Get("a"); ok {
		t.Error("expected a cleared")
	}
	if _, ok := s.Get("b"); ok {
		t.Error("expected b cleared")
	}
}

func TestKeysWithSpecialCharacters(t *testing.T) {
	s := newTestStore(t)

	// Cache keys embed JSON filter payloads, so keys contain braces,
	// quotes, and colons. Distinct keys must stay distinct on disk.
	k1 := `guest_search_1_{"query":"blade runner"}`
	k2 := `guest_search_1_{"query":"blade-runner"}`

	s.Set(k1, []byte("one"))
	s.Set(k2, []byte("two"))

	got, ok := s.Get(k1)
	if !ok || string(got) != "one" {
		t.Errorf("k1: got %q, %v", got, ok)
	}
	got, ok = s.Get(k2)
	if !ok || string(got) != "two" {
		t.Errorf("k2: got %q, %v", got, ok)
	}
}

func TestLongKeys(t *testing.T) {
	s := newTestStore(t)

	long := "guest_discover_1_" + string(make([]byte, 300))
	s.Set(long, []byte("v"))
	if _, ok := s.Get(long); !ok {
		t.Error("expected value for long key")
	}
}
