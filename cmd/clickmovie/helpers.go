package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
	"github.com/ykigathi/click-movie-studios-sub000/internal/config"
	"github.com/ykigathi/click-movie-studios-sub000/internal/provider"
	"github.com/ykigathi/click-movie-studios-sub000/internal/store"
	"github.com/ykigathi/click-movie-studios-sub000/internal/watchlist"
)

// Lipgloss styles used across commands.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	styleTitle   = lipgloss.NewStyle().Bold(true)

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")).
			MarginBottom(1)
)

// app bundles the wired services behind every command.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	selector  *provider.Selector
	catalog   *catalog.Catalog
	watchlist *watchlist.Watchlist
	dataStore *store.Store
}

// loadConfig loads and validates the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// initApp loads configuration and wires the catalog stack. The cache
// and saved lists live in separate directories under DataDir so that
// clearing the cache never touches the watchlist.
func initApp(path string) (*app, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)

	cacheStore, err := store.New(filepath.Join(cfg.App.DataDir, "cache"), logger)
	if err != nil {
		return nil, fmt.Errorf("open cache store: %w", err)
	}
	dataStore, err := store.New(filepath.Join(cfg.App.DataDir, "data"), logger)
	if err != nil {
		return nil, fmt.Errorf("open data store: %w", err)
	}

	selector := provider.NewSelector(cfg, logger)
	cat := catalog.New(selector, cacheStore, catalog.Options{
		ImageBaseURL: cfg.TMDb.ImageBaseURL,
		Logger:       logger,
	})
	wl := watchlist.New(dataStore, cat.Namespace(), logger)

	return &app{
		cfg:       cfg,
		logger:    logger,
		selector:  selector,
		catalog:   cat,
		watchlist: wl,
		dataStore: dataStore,
	}, nil
}

// releaseYear extracts the year from a YYYY-MM-DD release date.
func releaseYear(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return "?"
}

// movieLine renders one numbered listing line for terminal output.
func movieLine(index int, m catalog.Movie) string {
	return fmt.Sprintf("%s %s %s  %s %s",
		styleDim.Render(fmt.Sprintf("%d.", index)),
		styleTitle.Render(m.Title),
		styleDim.Render("("+releaseYear(m.ReleaseDate)+")"),
		styleInfo.Render(fmt.Sprintf("%.1f", m.VoteAverage)),
		styleDim.Render(fmt.Sprintf("[id %d]", m.ID)),
	)
}

// printListing renders a listing state to stdout.
func printListing(heading string, state catalog.State) {
	fmt.Println(styleHeader.Render(heading))
	if len(state.Items) == 0 {
		fmt.Println(styleDim.Render("No movies found."))
		return
	}
	for i, m := range state.Items {
		fmt.Println(movieLine(i+1, m))
	}
	if state.TotalPages > 1 {
		fmt.Println(styleDim.Render(fmt.Sprintf("\nPage %d of %d (%d movies)", state.Page, state.TotalPages, state.TotalItems)))
	}
}
