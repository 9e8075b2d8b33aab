// Package local implements the catalog provider contract over a small
// bundled dataset, keeping the app fully usable with no network access
// and no API credential.
package local

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

const (
	defaultPageSize = 6
	defaultDelay    = 250 * time.Millisecond

	// maxCredits bounds cast and crew lists on detail responses.
	maxCredits = 10
)

// Provider serves the bundled dataset. It implements only the required
// operation set (no Discoverer, no VideoLister) so callers exercise
// their capability fallbacks against it.
type Provider struct {
	movies   []catalog.Movie
	genres   []catalog.Genre
	pageSize int
	delay    time.Duration
}

// New returns a provider over the bundled dataset. The artificial
// delay keeps loading states visible in the UI, matching the feel of a
// real network call.
func New() *Provider {
	return &Provider{
		movies:   dataset(),
		genres:   genreVocabulary(),
		pageSize: defaultPageSize,
		delay:    defaultDelay,
	}
}

// NewWithDataset returns a provider over a custom dataset with no
// artificial delay. Used by tests.
func NewWithDataset(movies []catalog.Movie, genres []catalog.Genre, pageSize int) *Provider {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return &Provider{
		movies:   movies,
		genres:   genres,
		pageSize: pageSize,
	}
}

// Name identifies this provider in cache keys.
func (p *Provider) Name() string { return "local" }

// ListCategory returns one page of a category listing. The dataset has
// no showtime or release calendar, so now-playing and upcoming degrade
// to the trending ordering; top-rated sorts by rating.
func (p *Provider) ListCategory(ctx context.Context, category catalog.Category, page int) (catalog.Page[catalog.Movie], error) {
	if err := p.wait(ctx); err != nil {
		return catalog.Page[catalog.Movie]{}, err
	}

	movies := make([]catalog.Movie, len(p.movies))
	copy(movies, p.movies)

	if category == catalog.TopRated {
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].VoteAverage > movies[j].VoteAverage
		})
	}

	return p.paginate(movies, page), nil
}

// Search returns case-insensitive substring matches over title and
// overview. Blank queries yield an empty page without scanning.
func (p *Provider) Search(ctx context.Context, query string, page int) (catalog.Page[catalog.Movie], error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return catalog.EmptyPage[catalog.Movie](), nil
	}

	if err := p.wait(ctx); err != nil {
		return catalog.Page[catalog.Movie]{}, err
	}

	var matches []catalog.Movie
	for _, m := range p.movies {
		if strings.Contains(strings.ToLower(m.Title), query) ||
			strings.Contains(strings.ToLower(m.Overview), query) {
			matches = append(matches, m)
		}
	}

	return p.paginate(matches, page), nil
}

// GetDetail returns a movie with its extended fields, or
// *catalog.NotFoundError for ids outside the dataset.
func (p *Provider) GetDetail(ctx context.Context, id int) (catalog.Movie, error) {
	if err := p.wait(ctx); err != nil {
		return catalog.Movie{}, err
	}

	for _, m := range p.movies {
		if m.ID == id {
			if len(m.Cast) > maxCredits {
				m.Cast = m.Cast[:maxCredits]
			}
			if len(m.Crew) > maxCredits {
				m.Crew = m.Crew[:maxCredits]
			}
			return m, nil
		}
	}
	return catalog.Movie{}, &catalog.NotFoundError{ID: id}
}

// Genres returns the bundled tag vocabulary.
func (p *Provider) Genres(ctx context.Context) ([]catalog.Genre, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	genres := make([]catalog.Genre, len(p.genres))
	copy(genres, p.genres)
	return genres, nil
}

// paginate slices items into the requested 1-based page. Pages past
// the end come back empty with the page number echoed, mirroring how
// the remote API answers out-of-range pages.
func (p *Provider) paginate(items []catalog.Movie, page int) catalog.Page[catalog.Movie] {
	total := len(items)
	totalPages := (total + p.pageSize - 1) / p.pageSize

	if page < 1 {
		page = 1
	}
	start := (page - 1) * p.pageSize
	if start > total {
		start = total
	}
	end := start + p.pageSize
	if end > total {
		end = total
	}

	return catalog.Page[catalog.Movie]{
		PageNumber: page,
		Items:      items[start:end],
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// wait simulates network latency, honoring cancellation.
func (p *Provider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(p.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
