package catalog

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
)

// memStore is an in-memory cache.Store for tests.
type memStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string][]byte)}
}

func (m *memStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *memStore) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

func (m *memStore) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

func (m *memStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string][]byte)
}

// fakeProvider counts calls and delegates to overridable funcs.
type fakeProvider struct {
	name string

	mu            sync.Mutex
	listCalls     int
	searchCalls   int
	detailCalls   int
	genreCalls    int
	lastCategory  Category
	listOverride  func(category Category, page int) (Page[Movie], error)
	detailMovies  map[int]Movie
	searchResults []Movie
}

func newFakeProvider(name string) *fakeProvider {
	return &fakeProvider{name: name, detailMovies: make(map[int]Movie)}
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) ListCategory(_ context.Context, category Category, page int) (Page[Movie], error) {
	f.mu.Lock()
	f.listCalls++
	f.lastCategory = category
	override := f.listOverride
	f.mu.Unlock()

	if override != nil {
		return override(category, page)
	}
	return Page[Movie]{
		PageNumber: page,
		Items:      []Movie{{ID: page * 100, Title: "Movie"}},
		TotalPages: 10,
		TotalItems: 100,
	}, nil
}

func (f *fakeProvider) Search(_ context.Context, query string, page int) (Page[Movie], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	return Page[Movie]{PageNumber: page, Items: f.searchResults, TotalPages: 1, TotalItems: len(f.searchResults)}, nil
}

func (f *fakeProvider) GetDetail(_ context.Context, id int) (Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls++
	if m, ok := f.detailMovies[id]; ok {
		return m, nil
	}
	return Movie{}, &NotFoundError{ID: id}
}

func (f *fakeProvider) Genres(_ context.Context) ([]Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.genreCalls++
	return []Genre{{ID: 18, Name: "Drama"}}, nil
}

func (f *fakeProvider) calls() (list, search, detail, genres int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.searchCalls, f.detailCalls, f.genreCalls
}

// discoverableProvider adds the Discoverer capability.
type discoverableProvider struct {
	*fakeProvider
	discoverCalls int
	lastFilters   Filters
}

func (d *discoverableProvider) Discover(_ context.Context, page int, filters Filters) (Page[Movie], error) {
	d.discoverCalls++
	d.lastFilters = filters
	return Page[Movie]{PageNumber: page, Items: []Movie{{ID: 1, Title: "Filtered"}}, TotalPages: 1, TotalItems: 1}, nil
}

// swapSource lets tests change the active provider between loads.
type swapSource struct {
	mu sync.Mutex
	p  Provider
}

func (s *swapSource) Current() Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

func (s *swapSource) swap(p Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = p
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCatalog(p Provider) (*Catalog, *swapSource) {
	src := &swapSource{p: p}
	c := New(src, newMemStore(), Options{Logger: testLogger()})
	return c, src
}

func TestLoadCacheAside(t *testing.T) {
	fp := newFakeProvider("local")
	c, _ := newTestCatalog(fp)
	sl := c.Category(Trending)

	st := sl.Load(context.Background(), Request{Page: 1})
	if st.Err != "" || st.Loading {
		t.Fatalf("unexpected state: %+v", st)
	}
	if st.Page != 1 || st.TotalPages != 10 {
		t.Errorf("unexpected pagination: %+v", st)
	}

	// Immediate second load must be served from cache.
	sl.Load(context.Background(), Request{Page: 1})

	list, _, _, _ := fp.calls()
	if list != 1 {
		t.Errorf("expected 1 provider call, got %d", list)
	}
}

func TestLoadDistinctPagesFetchSeparately(t *testing.T) {
	fp := newFakeProvider("local")
	c, _ := newTestCatalog(fp)
	sl := c.Category(Trending)

	sl.Load(context.Background(), Request{Page: 1})
	sl.Load(context.Background(), Request{Page: 2})

	list, _, _, _ := fp.calls()
	if list != 2 {
		t.Errorf("expected 2 provider calls, got %d", list)
	}
}

func TestSlicesAreIndependent(t *testing.T) {
	fp := newFakeProvider("local")
	c, _ := newTestCatalog(fp)

	c.Category(Trending).Load(context.Background(), Request{Page: 1})
	st := c.Category(TopRated).State()
	if st.Page != 0 || st.Items != nil {
		t.Errorf("top-rated slice should be untouched: %+v", st)
	}
}

func TestLoadFailureKeepsPreviousItems(t *testing.T) {
	fp := newFakeProvider("local")
	c, _ := newTestCatalog(fp)
	sl := c.Category(Trending)

	sl.Load(context.Background(), Request{Page: 1})

	fp.mu.Lock()
	fp.listOverride = func(Category, int) (Page[Movie], error) {
		return Page[Movie]{}, &RemoteError{StatusCode: 500, Message: "upstream exploded"}
	}
	fp.mu.Unlock()

	st := sl.Load(context.Background(), Request{Page: 2})
	if st.Err != "upstream exploded" {
		t.Errorf("expected upstream message, got %q", st.Err)
	}
	if len(st.Items) != 1 || st.Items[0].ID != 100 {
		t.Errorf("expected previous items kept, got %+v", st.Items)
	}
	if st.Loading {
		t.Error("expected loading cleared after failure")
	}
}

func TestOverlappingLoadsLastIssuedWins(t *testing.T) {
	fp := newFakeProvider("local")
	started := make(chan struct{})
	release := make(chan struct{})
	fp.listOverride = func(_ Category, page int) (Page[Movie], error) {
		if page == 1 {
			close(started)
			<-release
		}
		return Page[Movie]{PageNumber: page, Items: []Movie{{ID: page}}, TotalPages: 5, TotalItems: 50}, nil
	}

	c, _ := newTestCatalog(fp)
	sl := c.Category(Trending)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sl.Load(context.Background(), Request{Page: 1})
	}()

	<-started
	sl.Load(context.Background(), Request{Page: 2})
	close(release)
	wg.Wait()

	// Page 1 resolved last but was issued first; its result must be
	// discarded in favor of the later-issued page 2.
	st := sl.State()
	if st.Page != 2 {
		t.Errorf("expected page 2 to win, got %d", st.Page)
	}
}

func TestSearchBlankQueryShortCircuits(t *testing.T) {
	fp := newFakeProvider("local")
	c, _ := newTestCatalog(fp)

	for _, query := range []string{"", "   "} {
		st := c.Search().Load(context.Background(), Request{Page: 1, Query: query})
		if len(st.Items) != 0 || st.Page != 1 || st.TotalPages != 0 {
			t.Errorf("query %q: expected empty page, got %+v", query, st)
		}
	}

	_, search, _, _ := fp.calls()
	if search != 0 {
		t.Errorf("expected no provider calls for blank queries, got %d", search)
	}
}

func TestDiscoverUsesCapabilityWhenPresent(t *testing.T) {
	dp := &discoverableProvider{fakeProvider: newFakeProvider("tmdb")}
	c, _ := newTestCatalog(dp)

	filters := &Filters{GenreIDs: []int{18}, MinRating: 7}
	st := c.Discover().Load(context.Background(), Request{Page: 1, Filters: filters})

	if dp.discoverCalls != 1 {
		t.Fatalf("expected 1 discover call, got %d", dp.discoverCalls)
	}
	if dp.lastFilters.MinRating != 7 {
		t.Errorf("filters not forwarded: %+v", dp.lastFilters)
	}
	if len(st.Items) != 1 || st.Items[0].Title != "Filtered" {
		t.Errorf("unexpected items: %+v", st.Items)
	}
}

func TestDiscoverFallsBackToTrending(t *testing.T) {
	fp := newFakeProvider("local") // no Discoverer
	c, _ := newTestCatalog(fp)

	c.Discover().Load(context.Background(), Request{Page: 1, Filters: &Filters{Year: 2020}})

	list, _, _, _ := fp.calls()
	if list != 1 {
		t.Fatalf("expected fallback to a category listing, got %d calls", list)
	}
	if fp.lastCategory != Trending {
		t.Errorf("expected trending fallback, got %s", fp.lastCategory)
	}
}

func TestDiscoverFallbackNotServedToCapableProvider(t *testing.T) {
	fp := newFakeProvider("local")
	c, src := newTestCatalog(fp)
	filters := &Filters{Year: 2020}

	// Degraded result cached under the local provider's namespace.
	c.Discover().Load(context.Background(), Request{Page: 1, Filters: filters})

	// Same request against a capable provider must hit Discover, not
	// the degraded cache entry.
	dp := &discoverableProvider{fakeProvider: newFakeProvider("tmdb")}
	src.swap(dp)
	c.Discover().Load(context.Background(), Request{Page: 1, Filters: filters})

	if dp.discoverCalls != 1 {
		t.Errorf("expected discover call after provider switch, got %d", dp.discoverCalls)
	}
}

func TestResetSupersedesInFlightLoad(t *testing.T) {
	fp := newFakeProvider("local")
	started := make(chan struct{})
	release := make(chan struct{})
	fp.listOverride = func(_ Category, page int) (Page[Movie], error) {
		close(started)
		<-release
		return Page[Movie]{PageNumber: page, Items: []Movie{{ID: 1}}, TotalPages: 1, TotalItems: 1}, nil
	}

	c, _ := newTestCatalog(fp)
	sl := c.Category(Trending)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sl.Load(context.Background(), Request{Page: 1})
	}()

	<-started
	sl.Reset()
	close(release)
	wg.Wait()

	st := sl.State()
	if st.Page != 0 || st.Items != nil {
		t.Errorf("expected idle state after reset, got %+v", st)
	}
}

func TestBuildKeyDeterministic(t *testing.T) {
	filters := &Filters{GenreIDs: []int{18, 35}, Year: 2020}

	k1 := buildKey("guest-local", "discover", 2, keyParams{Filters: filters})
	k2 := buildKey("guest-local", "discover", 2, keyParams{Filters: filters})
	if k1 != k2 {
		t.Errorf("keys differ: %q vs %q", k1, k2)
	}

	want := `guest-local_discover_2_{"filters":{"genre_ids":[18,35],"year":2020}}`
	if k1 != want {
		t.Errorf("unexpected key: %q", k1)
	}

	if buildKey("guest-local", "trending", 1, nil) != "guest-local_trending_1_null" {
		t.Errorf("unexpected bare key: %q", buildKey("guest-local", "trending", 1, nil))
	}
}
