// Package tmdb implements the catalog provider contract against the
// TMDb API v3.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
	"github.com/ykigathi/click-movie-studios-sub000/internal/config"
	"github.com/ykigathi/click-movie-studios-sub000/internal/httpclient"
)

const (
	// TMDb rejects pages outside [1, 500]; requests are clamped
	// rather than failed.
	minPage = 1
	maxPage = 500

	// maxCredits bounds cast and crew lists on detail responses.
	maxCredits = 10
)

// Client is a TMDb-backed catalog provider.
type Client struct {
	baseURL      string
	apiKey       string
	language     string
	region       string
	includeAdult bool
	http         *httpclient.Client
	logger       *slog.Logger
}

// Capability checks.
var (
	_ catalog.Provider    = (*Client)(nil)
	_ catalog.Discoverer  = (*Client)(nil)
	_ catalog.VideoLister = (*Client)(nil)
)

// New creates a TMDb client from provider configuration.
func New(cfg config.TMDbConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		language:     cfg.Language,
		region:       cfg.Region,
		includeAdult: cfg.IncludeAdult,
		http:         httpclient.New(httpclient.DefaultConfig(), logger),
		logger:       logger,
	}
}

// Name identifies this provider in cache keys.
func (c *Client) Name() string { return "tmdb" }

// categoryPaths maps catalog categories onto TMDb endpoints.
var categoryPaths = map[catalog.Category]string{
	catalog.Trending:   "/trending/movie/week",
	catalog.NowPlaying: "/movie/now_playing",
	catalog.TopRated:   "/movie/top_rated",
	catalog.Upcoming:   "/movie/upcoming",
}

// ListCategory returns one page of a category listing.
func (c *Client) ListCategory(ctx context.Context, category catalog.Category, page int) (catalog.Page[catalog.Movie], error) {
	path, ok := categoryPaths[category]
	if !ok {
		return catalog.Page[catalog.Movie]{}, fmt.Errorf("unknown category %q", category)
	}

	params := url.Values{"page": {strconv.Itoa(clampPage(page))}}
	var resp listResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return catalog.Page[catalog.Movie]{}, fmt.Errorf("list %s: %w", category, err)
	}
	return resp.toPage(), nil
}

// Search returns one page of title matches. Blank queries yield an
// empty page without a request.
func (c *Client) Search(ctx context.Context, query string, page int) (catalog.Page[catalog.Movie], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return catalog.EmptyPage[catalog.Movie](), nil
	}

	params := url.Values{
		"query": {query},
		"page":  {strconv.Itoa(clampPage(page))},
	}
	var resp listResponse
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return catalog.Page[catalog.Movie]{}, fmt.Errorf("search movies: %w", err)
	}
	return resp.toPage(), nil
}

// GetDetail returns a movie with its extended fields. Credits are
// fetched in the same request via append_to_response.
func (c *Client) GetDetail(ctx context.Context, id int) (catalog.Movie, error) {
	params := url.Values{"append_to_response": {"credits"}}

	var resp detailResponse
	err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, &resp)
	if err != nil {
		var remote *catalog.RemoteError
		if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
			return catalog.Movie{}, &catalog.NotFoundError{ID: id}
		}
		return catalog.Movie{}, fmt.Errorf("get movie %d: %w", id, err)
	}
	return resp.toMovie(), nil
}

// Genres returns the movie genre taxonomy.
func (c *Client) Genres(ctx context.Context) ([]catalog.Genre, error) {
	var resp genreListResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return resp.Genres, nil
}

// Discover returns one page of a filtered listing.
func (c *Client) Discover(ctx context.Context, page int, filters catalog.Filters) (catalog.Page[catalog.Movie], error) {
	params := url.Values{"page": {strconv.Itoa(clampPage(page))}}

	if len(filters.GenreIDs) > 0 {
		ids := make([]string, len(filters.GenreIDs))
		for i, id := range filters.GenreIDs {
			ids[i] = strconv.Itoa(id)
		}
		params.Set("with_genres", strings.Join(ids, ","))
	}
	if filters.Year > 0 {
		params.Set("primary_release_year", strconv.Itoa(filters.Year))
	}
	if filters.MinRating > 0 {
		params.Set("vote_average.gte", strconv.FormatFloat(filters.MinRating, 'f', 1, 64))
	}
	if sort := sortParam(filters.SortBy); sort != "" {
		params.Set("sort_by", sort)
	}

	var resp listResponse
	if err := c.get(ctx, "/discover/movie", params, &resp); err != nil {
		return catalog.Page[catalog.Movie]{}, fmt.Errorf("discover movies: %w", err)
	}
	return resp.toPage(), nil
}

// Videos returns trailers and clips for a movie.
func (c *Client) Videos(ctx context.Context, id int) ([]catalog.Video, error) {
	var resp videoListResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", id), nil, &resp); err != nil {
		return nil, fmt.Errorf("list videos for %d: %w", id, err)
	}

	videos := make([]catalog.Video, 0, len(resp.Results))
	for _, v := range resp.Results {
		videos = append(videos, catalog.Video{Key: v.Key, Name: v.Name, Site: v.Site, Type: v.Type})
	}
	return videos, nil
}

// get performs an authenticated GET request and decodes the JSON
// response. Locale, region, and the adult-content flag ride on every
// call.
func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	if c.apiKey == "" {
		return catalog.ErrMissingCredential
	}

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("language", c.language)
	q.Set("region", c.region)
	q.Set("include_adult", strconv.FormatBool(c.includeAdult))
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &catalog.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &catalog.RemoteError{
			StatusCode: resp.StatusCode,
			Message:    body.StatusMessage,
		}
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// clampPage silently corrects out-of-range page numbers before they
// reach the API.
func clampPage(page int) int {
	if page < minPage {
		return minPage
	}
	if page > maxPage {
		return maxPage
	}
	return page
}

// sortParam maps a catalog sort key onto a TMDb sort_by value.
func sortParam(key catalog.SortKey) string {
	switch key {
	case catalog.SortPopularity:
		return "popularity.desc"
	case catalog.SortRating:
		return "vote_average.desc"
	case catalog.SortReleaseDate:
		return "primary_release_date.desc"
	default:
		return ""
	}
}
