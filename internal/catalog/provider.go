package catalog

import "context"

// Provider is the data-access contract every catalog source implements.
// Callers are provider-agnostic: the same operations work against the
// remote API and the bundled offline dataset.
type Provider interface {
	// ListCategory returns one page of a category listing.
	ListCategory(ctx context.Context, category Category, page int) (Page[Movie], error)

	// Search returns one page of title/overview matches. A blank or
	// whitespace-only query yields an empty page without any lookup.
	Search(ctx context.Context, query string, page int) (Page[Movie], error)

	// GetDetail returns a movie with its extended fields populated.
	// Returns *NotFoundError when no movie matches id.
	GetDetail(ctx context.Context, id int) (Movie, error)

	// Genres returns the full tag vocabulary, stable within a process.
	Genres(ctx context.Context) ([]Genre, error)

	// Name identifies the provider ("tmdb" or "local"). It also
	// partitions the cache key space so results from one provider are
	// never served as another's.
	Name() string
}

// Discoverer is the optional filtered-listing capability. Callers must
// check for it and fall back to ListCategory(Trending, page) when the
// active provider does not expose it.
type Discoverer interface {
	Discover(ctx context.Context, page int, filters Filters) (Page[Movie], error)
}

// VideoLister is the optional trailer-listing capability.
type VideoLister interface {
	Videos(ctx context.Context, id int) ([]Video, error)
}

// ProviderSource yields the currently selected provider. Callers
// re-read it on every load rather than holding a provider reference
// across configuration changes.
type ProviderSource interface {
	Current() Provider
}
