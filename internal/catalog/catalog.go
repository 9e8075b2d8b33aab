package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog/cache"
)

// TTLPolicy sets how long each resource kind stays fresh. Individual
// resource names can be overridden via PerResource.
type TTLPolicy struct {
	Lists  time.Duration
	Search time.Duration
	Detail time.Duration
	Genres time.Duration

	PerResource map[string]time.Duration
}

// DefaultTTLPolicy returns the standard expiry policy: short-lived
// lists and search, hour-long details, day-long taxonomy.
func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		Lists:  10 * time.Minute,
		Search: 5 * time.Minute,
		Detail: time.Hour,
		Genres: 24 * time.Hour,
	}
}

// For returns the TTL for a resource name.
func (p TTLPolicy) For(resource string) time.Duration {
	if ttl, ok := p.PerResource[resource]; ok {
		return ttl
	}
	switch resource {
	case resourceSearch:
		return p.Search
	case resourceDetail, resourceVideos:
		return p.Detail
	case resourceGenres:
		return p.Genres
	default:
		return p.Lists
	}
}

// Options configures a Catalog.
type Options struct {
	// Namespace partitions the cache and saved lists per user.
	// Defaults to "guest".
	Namespace string

	// Policy sets per-resource cache TTLs. Zero value means defaults.
	Policy TTLPolicy

	// ImageBaseURL builds poster and backdrop URLs.
	ImageBaseURL string

	Logger *slog.Logger
}

// Catalog is the facade over the catalog's resource slices. It owns one
// independently loading slice per facet plus cache-aside helpers for
// details and the genre taxonomy. Construct one per process (or per
// test); there is no package-level instance.
type Catalog struct {
	providers    ProviderSource
	cache        *cache.Cache
	policy       TTLPolicy
	namespace    string
	imageBaseURL string
	logger       *slog.Logger

	categories map[Category]*Slice
	discover   *Slice
	search     *Slice
}

// New creates a Catalog over a provider source and a durable store.
func New(providers ProviderSource, store cache.Store, opts Options) *Catalog {
	if opts.Namespace == "" {
		opts.Namespace = "guest"
	}
	if opts.Policy.Lists == 0 && opts.Policy.Search == 0 &&
		opts.Policy.Detail == 0 && opts.Policy.Genres == 0 && opts.Policy.PerResource == nil {
		opts.Policy = DefaultTTLPolicy()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Catalog{
		providers:    providers,
		cache:        cache.New(store, opts.Logger),
		policy:       opts.Policy,
		namespace:    opts.Namespace,
		imageBaseURL: opts.ImageBaseURL,
		logger:       opts.Logger,
	}

	c.categories = make(map[Category]*Slice, len(Categories()))
	for _, cat := range Categories() {
		resource := string(cat)
		c.categories[cat] = newSlice(resource, c.policy.For(resource), c.cache, providers, c.namespace, categoryFetch(cat), c.logger)
	}
	c.discover = newSlice(resourceDiscover, c.policy.For(resourceDiscover), c.cache, providers, c.namespace, discoverFetch(c.logger), c.logger)
	c.search = newSlice(resourceSearch, c.policy.For(resourceSearch), c.cache, providers, c.namespace, searchFetch, c.logger)

	return c
}

// Category returns the slice for a browsable category.
func (c *Catalog) Category(cat Category) *Slice {
	return c.categories[cat]
}

// Discover returns the filtered-listing slice.
func (c *Catalog) Discover() *Slice {
	return c.discover
}

// Search returns the search results slice.
func (c *Catalog) Search() *Slice {
	return c.search
}

// Cache exposes the TTL cache for housekeeping (e.g. `clickmovie cache
// clear`).
func (c *Catalog) Cache() *cache.Cache {
	return c.cache
}

// Namespace returns the cache namespace this catalog was built with.
func (c *Catalog) Namespace() string {
	return c.namespace
}

// Detail returns a movie with extended fields, cache-aside.
func (c *Catalog) Detail(ctx context.Context, id int) (Movie, error) {
	p := c.providers.Current()
	key := buildKey(c.namespace+"-"+p.Name(), resourceDetail, id, nil)

	var m Movie
	if c.cache.Read(key, c.policy.For(resourceDetail), &m) {
		return m, nil
	}

	m, err := p.GetDetail(ctx, id)
	if err != nil {
		return Movie{}, err
	}
	c.cache.Write(key, m)
	return m, nil
}

// Genres returns the tag vocabulary, cache-aside.
func (c *Catalog) Genres(ctx context.Context) ([]Genre, error) {
	p := c.providers.Current()
	key := buildKey(c.namespace+"-"+p.Name(), resourceGenres, 1, nil)

	var genres []Genre
	if c.cache.Read(key, c.policy.For(resourceGenres), &genres) {
		return genres, nil
	}

	genres, err := p.Genres(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Write(key, genres)
	return genres, nil
}

// Videos returns trailers for a movie when the active provider exposes
// the capability; supported reports whether it does.
func (c *Catalog) Videos(ctx context.Context, id int) (videos []Video, supported bool, err error) {
	p := c.providers.Current()
	vl, ok := p.(VideoLister)
	if !ok {
		return nil, false, nil
	}

	key := buildKey(c.namespace+"-"+p.Name(), resourceVideos, id, nil)
	if c.cache.Read(key, c.policy.For(resourceVideos), &videos) {
		return videos, true, nil
	}

	videos, err = vl.Videos(ctx, id)
	if err != nil {
		return nil, true, err
	}
	c.cache.Write(key, videos)
	return videos, true, nil
}

// PosterURL returns the full image URL for a poster or backdrop path.
// size is a TMDb size segment like "w342" or "original".
func (c *Catalog) PosterURL(path, size string) string {
	if path == "" || c.imageBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s%s%s", c.imageBaseURL, size, path)
}
