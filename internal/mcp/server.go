// Package mcp exposes the movie catalog as MCP tools so LLM clients
// can browse, search, and manage the watchlist over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
	"github.com/ykigathi/click-movie-studios-sub000/internal/watchlist"
)

// Deps holds backend dependencies for MCP tool handlers.
type Deps struct {
	Catalog   *catalog.Catalog
	Watchlist *watchlist.Watchlist
}

// Server wraps an MCP SDK server with clickmovie tool handlers.
type Server struct {
	server *mcpsdk.Server
	deps   Deps
	logger *slog.Logger
}

// NewServer creates an MCP server with all clickmovie tools registered.
func NewServer(deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "clickmovie",
			Version: "0.1.0",
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{server: s, deps: deps, logger: logger}
	srv.registerTools()
	return srv
}

// ServeStdio runs the MCP server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// MCPServer returns the underlying MCP SDK server (for testing).
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.server
}

func (s *Server) registerTools() {
	s.server.AddTool(searchMoviesTool(), s.handleSearchMovies)
	s.server.AddTool(movieDetailsTool(), s.handleMovieDetails)
	s.server.AddTool(listCategoryTool(), s.handleListCategory)
	s.server.AddTool(discoverMoviesTool(), s.handleDiscoverMovies)
	s.server.AddTool(listGenresTool(), s.handleListGenres)
	s.server.AddTool(movieVideosTool(), s.handleMovieVideos)
	s.server.AddTool(watchlistAddTool(), s.handleWatchlistAdd)
	s.server.AddTool(watchlistRemoveTool(), s.handleWatchlistRemove)
	s.server.AddTool(watchlistListTool(), s.handleWatchlistList)
}

// Tool definitions.

func searchMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "search_movies",
		Description: "Search the movie catalog by title or overview text. Returns a page of matching movies with IDs, titles, years, and ratings.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The text to search for",
				},
				"page": map[string]any{
					"type":        "integer",
					"description": "Result page, starting at 1",
				},
			},
			"required": []any{"query"},
		},
	}
}

func movieDetailsTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "movie_details",
		Description: "Get detailed information about a movie by its ID. Returns runtime, genres, tagline, full overview, cast, and crew.",
		InputSchema: movieIDSchema("The ID of the movie"),
	}
}

func listCategoryTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "list_category",
		Description: "List movies in a browse category: trending, now-playing, top-rated, or upcoming.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": map[string]any{
					"type":        "string",
					"description": "One of: trending, now-playing, top-rated, upcoming",
					"enum":        []any{"trending", "now-playing", "top-rated", "upcoming"},
				},
				"page": map[string]any{
					"type":        "integer",
					"description": "Result page, starting at 1",
				},
			},
			"required": []any{"category"},
		},
	}
}

func discoverMoviesTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "discover_movies",
		Description: "Discover movies filtered by genre, release year, and minimum rating. Falls back to trending when the active catalog source cannot filter.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"genre_ids": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "integer"},
					"description": "Genre IDs to filter by (see list_genres)",
				},
				"year": map[string]any{
					"type":        "integer",
					"description": "Release year to filter by",
				},
				"min_rating": map[string]any{
					"type":        "number",
					"description": "Minimum average rating (0-10)",
				},
				"sort_by": map[string]any{
					"type":        "string",
					"description": "Sort order: popularity, rating, or release_date",
					"enum":        []any{"popularity", "rating", "release_date"},
				},
				"page": map[string]any{
					"type":        "integer",
					"description": "Result page, starting at 1",
				},
			},
		},
	}
}

func listGenresTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "list_genres",
		Description: "List the genre vocabulary of the active catalog source with IDs usable in discover_movies.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

func movieVideosTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "movie_videos",
		Description: "List trailers and clips for a movie by its ID. Not every catalog source carries videos.",
		InputSchema: movieIDSchema("The ID of the movie"),
	}
}

func watchlistAddTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "watchlist_add",
		Description: "Add a movie to the watchlist by its ID. The movie must exist in the catalog.",
		InputSchema: movieIDSchema("The ID of the movie to bookmark"),
	}
}

func watchlistRemoveTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "watchlist_remove",
		Description: "Remove a movie from the watchlist by its ID.",
		InputSchema: movieIDSchema("The ID of the movie to remove"),
	}
}

func watchlistListTool() *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "watchlist_list",
		Description: "List the bookmarked movies, newest first.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

func movieIDSchema(desc string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "integer",
				"description": desc,
			},
		},
		"required": []any{"id"},
	}
}

// Tool handlers. Each parses arguments, calls the catalog, and returns
// JSON text content.

func (s *Server) handleSearchMovies(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Catalog == nil {
		return toolError("catalog not configured"), nil
	}

	var args struct {
		Query string `json:"query"`
		Page  int    `json:"page"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Query == "" {
		return toolError("search_movies requires a 'query' string argument"), nil
	}
	if args.Page < 1 {
		args.Page = 1
	}

	state := s.deps.Catalog.Search().Load(ctx, catalog.Request{Page: args.Page, Query: args.Query})
	return stateJSON(state)
}

func (s *Server) handleMovieDetails(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Catalog == nil {
		return toolError("catalog not configured"), nil
	}

	id, err := extractIntFromArgs(req.Params.Arguments, "id")
	if err != nil {
		return toolError(err.Error()), nil
	}

	movie, err := s.deps.Catalog.Detail(ctx, id)
	if err != nil {
		return toolError(fmt.Sprintf("get details failed: %v", err)), nil
	}
	return toolJSON(movie)
}

func (s *Server) handleListCategory(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Catalog == nil {
		return toolError("catalog not configured"), nil
	}

	var args struct {
		Category string `json:"category"`
		Page     int    `json:"page"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Page < 1 {
		args.Page = 1
	}

	slice := s.deps.Catalog.Category(catalog.Category(args.Category))
	if slice == nil {
		return toolError(fmt.Sprintf("unknown category %q", args.Category)), nil
	}

	state := slice.Load(ctx, catalog.Request{Page: args.Page})
	return stateJSON(state)
}

func (s *Server) handleDiscoverMovies(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Catalog == nil {
		return toolError("catalog not configured"), nil
	}

	var args struct {
		GenreIDs  []int   `json:"genre_ids"`
		Year      int     `json:"year"`
		MinRating float64 `json:"min_rating"`
		SortBy    string  `json:"sort_by"`
		Page      int     `json:"page"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}
	if args.Page < 1 {
		args.Page = 1
	}

	var filters *catalog.Filters
	if len(args.GenreIDs) > 0 || args.Year != 0 || args.MinRating != 0 || args.SortBy != "" {
		filters = &catalog.Filters{
			GenreIDs:  args.GenreIDs,
			Year:      args.Year,
			MinRating: args.MinRating,
			SortBy:    catalog.SortKey(args.SortBy),
		}
	}

	state := s.deps.Catalog.Discover().Load(ctx, catalog.Request{Page: args.Page, Filters: filters})
	return stateJSON(state)
}

func (s *Server) handleListGenres(ctx context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Catalog == nil {
		return toolError("catalog not configured"), nil
	}

	genres, err := s.deps.Catalog.Genres(ctx)
	if err != nil {
		return toolError(fmt.Sprintf("list genres failed: %v", err)), nil
	}
	return toolJSON(genres)
}

func (s *Server) handleMovieVideos(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Catalog == nil {
		return toolError("catalog not configured"), nil
	}

	id, err := extractIntFromArgs(req.Params.Arguments, "id")
	if err != nil {
		return toolError(err.Error()), nil
	}

	videos, supported, err := s.deps.Catalog.Videos(ctx, id)
	if err != nil {
		return toolError(fmt.Sprintf("get videos failed: %v", err)), nil
	}
	if !supported {
		return toolError("the active catalog source does not carry videos"), nil
	}
	return toolJSON(videos)
}

func (s *Server) handleWatchlistAdd(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Catalog == nil || s.deps.Watchlist == nil {
		return toolError("watchlist not configured"), nil
	}

	id, err := extractIntFromArgs(req.Params.Arguments, "id")
	if err != nil {
		return toolError(err.Error()), nil
	}

	movie, err := s.deps.Catalog.Detail(ctx, id)
	if err != nil {
		return toolError(fmt.Sprintf("movie %d not found in catalog: %v", id, err)), nil
	}
	s.deps.Watchlist.Add(movie)

	return toolJSON(map[string]any{
		"status": "added",
		"id":     movie.ID,
		"title":  movie.Title,
	})
}

func (s *Server) handleWatchlistRemove(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Watchlist == nil {
		return toolError("watchlist not configured"), nil
	}

	id, err := extractIntFromArgs(req.Params.Arguments, "id")
	if err != nil {
		return toolError(err.Error()), nil
	}

	removed := s.deps.Watchlist.Remove(id)
	return toolJSON(map[string]any{
		"id":      id,
		"removed": removed,
	})
}

func (s *Server) handleWatchlistList(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	if s.deps.Watchlist == nil {
		return toolError("watchlist not configured"), nil
	}
	return toolJSON(s.deps.Watchlist.Items())
}

// Helper functions.

// stateJSON converts a slice load outcome into a tool result. A failed
// load carries its user-facing message in the state.
func stateJSON(state catalog.State) (*mcpsdk.CallToolResult, error) {
	if state.Err != "" {
		return toolError(state.Err), nil
	}
	return toolJSON(map[string]any{
		"page":        state.Page,
		"total_pages": state.TotalPages,
		"total_items": state.TotalItems,
		"items":       state.Items,
	})
}

// toolJSON marshals v to JSON and returns it as text content.
func toolJSON(v any) (*mcpsdk.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// toolError returns a tool result indicating an error.
func toolError(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
		IsError: true,
	}
}

// extractIntFromArgs extracts an integer argument from raw JSON arguments.
func extractIntFromArgs(raw json.RawMessage, key string) (int, error) {
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return 0, fmt.Errorf("invalid arguments: %w", err)
	}

	val, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}

	switch v := val.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s must be a number: %w", key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%s must be a number, got %T", key, val)
	}
}
