// Package catalog defines the movie catalog domain model, the data
// provider contract, and the per-resource slice managers that cache
// provider results.
package catalog

// Category is a browsable catalog listing.
type Category string

// Browsable categories.
const (
	Trending   Category = "trending"
	NowPlaying Category = "now-playing"
	TopRated   Category = "top-rated"
	Upcoming   Category = "upcoming"
)

// Categories returns all browsable categories in display order.
func Categories() []Category {
	return []Category{Trending, NowPlaying, TopRated, Upcoming}
}

// Movie is a catalog item. List operations populate the core fields;
// GetDetail additionally fills Runtime, Budget, Revenue, Tagline, Cast,
// and Crew. A list-shaped movie is always a field subset of the same
// movie's detail shape.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	ReleaseDate  string  `json:"release_date"`
	Genres       []Genre `json:"genres,omitempty"`

	// Detail-only fields.
	Runtime int          `json:"runtime,omitempty"`
	Budget  int64        `json:"budget,omitempty"`
	Revenue int64        `json:"revenue,omitempty"`
	Tagline string       `json:"tagline,omitempty"`
	Cast    []CastMember `json:"cast,omitempty"`
	Crew    []CrewMember `json:"crew,omitempty"`
}

// Genre is a taxonomy tag.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is an actor credit on a detail response.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
}

// CrewMember is a crew credit on a detail response.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job,omitempty"`
}

// Video is a trailer or clip attached to a movie.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Page is one page of a paginated result.
// Invariants: PageNumber >= 1; PageNumber <= TotalPages unless
// TotalPages == 0 (empty result).
type Page[T any] struct {
	PageNumber int `json:"page"`
	Items      []T `json:"items"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// EmptyPage returns the canonical empty result.
func EmptyPage[T any]() Page[T] {
	return Page[T]{PageNumber: 1}
}

// SortKey orders discover results.
type SortKey string

// Discover sort orders.
const (
	SortPopularity  SortKey = "popularity"
	SortRating      SortKey = "rating"
	SortReleaseDate SortKey = "release_date"
)

// Filters narrow a discover listing. The zero value means unfiltered.
type Filters struct {
	GenreIDs  []int   `json:"genre_ids,omitempty"`
	Year      int     `json:"year,omitempty"`
	MinRating float64 `json:"min_rating,omitempty"`
	SortBy    SortKey `json:"sort_by,omitempty"`
}
