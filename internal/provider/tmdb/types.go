package tmdb

import "github.com/ykigathi/click-movie-studios-sub000/internal/catalog"

// movieResult is a movie as it appears in TMDb list responses.
type movieResult struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	ReleaseDate  string  `json:"release_date"`
}

func (m movieResult) toMovie() catalog.Movie {
	return catalog.Movie{
		ID:           m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		VoteAverage:  m.VoteAverage,
		VoteCount:    m.VoteCount,
		ReleaseDate:  m.ReleaseDate,
	}
}

// listResponse is the TMDb paginated list envelope.
type listResponse struct {
	Page         int           `json:"page"`
	Results      []movieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

func (r listResponse) toPage() catalog.Page[catalog.Movie] {
	items := make([]catalog.Movie, 0, len(r.Results))
	for _, m := range r.Results {
		items = append(items, m.toMovie())
	}
	return catalog.Page[catalog.Movie]{
		PageNumber: r.Page,
		Items:      items,
		TotalPages: r.TotalPages,
		TotalItems: r.TotalResults,
	}
}

// detailResponse is the TMDb movie detail shape, with credits appended
// via append_to_response.
type detailResponse struct {
	movieResult
	Runtime int             `json:"runtime"`
	Budget  int64           `json:"budget"`
	Revenue int64           `json:"revenue"`
	Tagline string          `json:"tagline"`
	Genres  []catalog.Genre `json:"genres"`
	Credits creditsResponse `json:"credits"`
}

type creditsResponse struct {
	Cast []castResult `json:"cast"`
	Crew []crewResult `json:"crew"`
}

type castResult struct {
	Name      string `json:"name"`
	Character string `json:"character"`
}

type crewResult struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

func (d detailResponse) toMovie() catalog.Movie {
	m := d.movieResult.toMovie()
	m.Runtime = d.Runtime
	m.Budget = d.Budget
	m.Revenue = d.Revenue
	m.Tagline = d.Tagline
	m.Genres = d.Genres

	for i, c := range d.Credits.Cast {
		if i == maxCredits {
			break
		}
		m.Cast = append(m.Cast, catalog.CastMember{Name: c.Name, Character: c.Character})
	}
	for i, c := range d.Credits.Crew {
		if i == maxCredits {
			break
		}
		m.Crew = append(m.Crew, catalog.CrewMember{Name: c.Name, Job: c.Job})
	}
	return m
}

// genreListResponse wraps the genre taxonomy endpoint.
type genreListResponse struct {
	Genres []catalog.Genre `json:"genres"`
}

// videoListResponse wraps the movie videos endpoint.
type videoListResponse struct {
	Results []videoResult `json:"results"`
}

type videoResult struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// errorResponse is the TMDb error body.
type errorResponse struct {
	StatusMessage string `json:"status_message"`
}
