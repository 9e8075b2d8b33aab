package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
	"github.com/ykigathi/click-movie-studios-sub000/internal/provider/local"
	"github.com/ykigathi/click-movie-studios-sub000/internal/search"
	"github.com/ykigathi/click-movie-studios-sub000/internal/store"
	"github.com/ykigathi/click-movie-studios-sub000/internal/watchlist"
)

type testSource struct{ p catalog.Provider }

func (s testSource) Current() catalog.Provider { return s.p }

func newTestApp(t *testing.T) *app {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	movies := []catalog.Movie{
		{ID: 27205, Title: "Inception", ReleaseDate: "2010-07-16", VoteAverage: 8.4, Overview: "Dream heist."},
		{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-31", VoteAverage: 8.2, Overview: "Simulated reality."},
		{ID: 550, Title: "Fight Club", ReleaseDate: "1999-10-15", VoteAverage: 8.4, Overview: "Underground club."},
	}
	genres := []catalog.Genre{{ID: 878, Name: "Science Fiction"}}
	provider := local.NewWithDataset(movies, genres, 6)

	cacheStore, err := store.New(t.TempDir(), logger)
	if err != nil {
		t.Fatal(err)
	}
	dataStore, err := store.New(t.TempDir(), logger)
	if err != nil {
		t.Fatal(err)
	}

	cat := catalog.New(testSource{provider}, cacheStore, catalog.Options{Logger: logger})
	return &app{
		logger:    logger,
		catalog:   cat,
		watchlist: watchlist.New(dataStore, cat.Namespace(), logger),
		dataStore: dataStore,
	}
}

// loadedModel returns a model with the first category already loaded.
func loadedModel(t *testing.T) browseModel {
	t.Helper()
	a := newTestApp(t)
	m := newBrowseModel(context.Background(), a)

	msg := m.loadCategory(m.tabs[0], 1)()
	loaded, ok := msg.(listLoadedMsg)
	if !ok {
		t.Fatalf("expected listLoadedMsg, got %T", msg)
	}
	updated, _ := m.Update(loaded)
	return updated.(browseModel)
}

func TestBrowseModel_InitialLoad(t *testing.T) {
	m := loadedModel(t)

	if len(m.state.Items) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(m.state.Items))
	}
	if m.loading {
		t.Error("loading should be false after listLoadedMsg")
	}

	view := m.View()
	if !strings.Contains(view, "Inception") {
		t.Errorf("view should list movies, got:\n%s", view)
	}
	if !strings.Contains(view, "Trending") {
		t.Errorf("view should show tabs, got:\n%s", view)
	}
}

func TestBrowseModel_CursorNavigation(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(browseModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	// Cursor stops at the end of the list.
	for range 5 {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(browseModel)
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(browseModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
}

func TestBrowseModel_DetailView(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(detailLoadedMsg{movie: m.state.Items[0]})
	m = updated.(browseModel)

	if m.mode != modeDetail {
		t.Fatal("expected detail mode")
	}
	view := m.View()
	if !strings.Contains(view, "Dream heist.") {
		t.Errorf("detail view should show overview, got:\n%s", view)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(browseModel)
	if m.mode != modeList {
		t.Error("esc should return to the list")
	}
}

func TestBrowseModel_DetailErrorStaysOnList(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(detailLoadedMsg{err: &catalog.NotFoundError{ID: 999}})
	m = updated.(browseModel)

	if m.mode != modeList {
		t.Error("expected to stay on the list after a failed detail load")
	}
	if m.errLine == "" {
		t.Error("expected an error line")
	}
}

func TestBrowseModel_WatchlistToggle(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m = updated.(browseModel)
	if !m.watchlist.Contains(27205) {
		t.Error("expected first movie bookmarked")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	m = updated.(browseModel)
	if m.watchlist.Contains(27205) {
		t.Error("expected bookmark removed on second toggle")
	}
}

func TestBrowseModel_WatchlistTab(t *testing.T) {
	m := loadedModel(t)
	m.watchlist.Add(m.state.Items[1])

	// The watchlist tab sits one step left of the first category.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(browseModel)

	if m.tabIdx != watchlistTab {
		t.Fatalf("expected watchlist tab, got %d", m.tabIdx)
	}
	items := m.currentItems()
	if len(items) != 1 || items[0].ID != 603 {
		t.Errorf("unexpected watchlist rows: %+v", items)
	}
	view := m.View()
	if !strings.Contains(view, "The Matrix") {
		t.Errorf("watchlist view should show bookmark, got:\n%s", view)
	}
}

func TestBrowseModel_SearchMode(t *testing.T) {
	a := newTestApp(t)
	m := newBrowseModel(context.Background(), a)
	// A zero debounce commits synchronously, keeping the test deterministic.
	m.searcher = search.New(a.catalog.Search(), a.dataStore, a.catalog.Namespace(), 0, a.logger)
	m.searcher.OnResult = func(st catalog.State) {
		select {
		case m.resultCh <- st:
		default:
		}
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = updated.(browseModel)
	if m.mode != modeSearch {
		t.Fatal("expected search mode")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m', 'a', 't', 'r', 'i', 'x'}})
	m = updated.(browseModel)

	st := m.searcher.State()
	if len(st.Items) != 1 || st.Items[0].ID != 603 {
		t.Errorf("expected search hit, got %+v", st)
	}
}
