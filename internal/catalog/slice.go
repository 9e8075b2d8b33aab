package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog/cache"
)

// Resource names for the non-category slices.
const (
	resourceDiscover = "discover"
	resourceSearch   = "search"
	resourceDetail   = "detail"
	resourceGenres   = "genres"
	resourceVideos   = "videos"
)

// Request describes one load: the page to fetch plus the query (search
// slice) or filters (discover slice) that shape it.
type Request struct {
	Page    int
	Query   string
	Filters *Filters
}

// State is the caller-visible state of a slice. On failure Err is set
// and the previous Items are kept, so stale data stays visible instead
// of a blank view.
type State struct {
	Items      []Movie
	Loading    bool
	Err        string
	Page       int
	TotalPages int
	TotalItems int
}

// fetchFunc performs the provider call for one resource.
type fetchFunc func(ctx context.Context, p Provider, req Request) (Page[Movie], error)

// Slice owns the load/cache/pagination state of one catalog facet.
// Each slice has a disjoint cache key namespace, so concurrent loads on
// different slices never contend.
type Slice struct {
	resource  string
	ttl       time.Duration
	cache     *cache.Cache
	providers ProviderSource
	namespace string
	fetch     fetchFunc
	logger    *slog.Logger

	mu    sync.Mutex
	gen   uint64
	state State
}

func newSlice(resource string, ttl time.Duration, c *cache.Cache, providers ProviderSource, namespace string, fetch fetchFunc, logger *slog.Logger) *Slice {
	return &Slice{
		resource:  resource,
		ttl:       ttl,
		cache:     c,
		providers: providers,
		namespace: namespace,
		fetch:     fetch,
		logger:    logger,
	}
}

// State returns the current slice state. Items must be treated as
// read-only by callers.
func (s *Slice) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset returns the slice to its idle state and supersedes any
// in-flight load.
func (s *Slice) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.state = State{}
}

// Load performs a cache-aside load of one page: cache read, then
// provider fetch on miss, then cache write. Page bounds are the
// caller's responsibility; out-of-range pages simply yield what the
// provider yields.
//
// Each call supersedes any load still in flight on this slice: a fetch
// that completes after a newer Load began is discarded, so the
// last-issued load always wins.
func (s *Slice) Load(ctx context.Context, req Request) State {
	p := s.providers.Current()
	key := s.cacheKey(p, req)

	var pg Page[Movie]
	if s.cache.Read(key, s.ttl, &pg) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.gen++
		s.state = readyState(pg)
		return s.state
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()

	pg, err := s.fetch(ctx, p, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.logger.Debug("discarding superseded load",
			slog.String("resource", s.resource),
			slog.Int("page", req.Page),
		)
		return s.state
	}
	if err != nil {
		s.state.Loading = false
		s.state.Err = ErrorMessage(err)
		s.logger.Warn("slice load failed",
			slog.String("resource", s.resource),
			slog.Int("page", req.Page),
			slog.String("error", err.Error()),
		)
		return s.state
	}

	s.cache.Write(key, pg)
	s.state = readyState(pg)
	return s.state
}

func readyState(pg Page[Movie]) State {
	return State{
		Items:      pg.Items,
		Page:       pg.PageNumber,
		TotalPages: pg.TotalPages,
		TotalItems: pg.TotalItems,
	}
}

// cacheKey builds "<namespace>_<resource>_<page>_<json(params)>". The
// namespace embeds the provider name, so offline results never satisfy
// a remote lookup (or vice versa) after the credential changes.
func (s *Slice) cacheKey(p Provider, req Request) string {
	return buildKey(s.namespace+"-"+p.Name(), s.resource, req.Page, keyParams{
		Query:   req.Query,
		Filters: req.Filters,
	})
}

// keyParams is the serialized tail of a cache key. Field order is
// fixed by the struct, so keys are deterministic.
type keyParams struct {
	Query   string   `json:"query,omitempty"`
	Filters *Filters `json:"filters,omitempty"`
}

// buildKey assembles a cache key. Keys carry no volatile data: the
// same namespace, resource, page, and params always yield the same key.
func buildKey(namespace, resource string, page int, params any) string {
	tail := "null"
	if params != nil {
		if data, err := json.Marshal(params); err == nil {
			tail = string(data)
		}
	}
	return fmt.Sprintf("%s_%s_%d_%s", namespace, resource, page, tail)
}

// categoryFetch returns the fetch for a plain category slice.
func categoryFetch(category Category) fetchFunc {
	return func(ctx context.Context, p Provider, req Request) (Page[Movie], error) {
		return p.ListCategory(ctx, category, req.Page)
	}
}

// discoverFetch fetches a filtered listing when the provider supports
// it, and otherwise degrades to the plain trending listing, dropping
// the filters. The cache key still reflects the requested filters, so
// a later capable provider is not served the degraded result.
func discoverFetch(logger *slog.Logger) fetchFunc {
	return func(ctx context.Context, p Provider, req Request) (Page[Movie], error) {
		if req.Filters == nil {
			return p.ListCategory(ctx, Trending, req.Page)
		}
		if d, ok := p.(Discoverer); ok {
			return d.Discover(ctx, req.Page, *req.Filters)
		}
		logger.Debug("provider has no discover support, falling back to trending",
			slog.String("provider", p.Name()),
		)
		return p.ListCategory(ctx, Trending, req.Page)
	}
}

// searchFetch fetches search results. Blank queries short-circuit to
// an empty page without touching the provider.
func searchFetch(ctx context.Context, p Provider, req Request) (Page[Movie], error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return EmptyPage[Movie](), nil
	}
	return p.Search(ctx, query, req.Page)
}
