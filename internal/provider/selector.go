// Package provider selects the active catalog data source: the remote
// TMDb client when a credential is configured, the bundled offline
// dataset otherwise.
package provider

import (
	"log/slog"
	"sync"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
	"github.com/ykigathi/click-movie-studios-sub000/internal/config"
	"github.com/ykigathi/click-movie-studios-sub000/internal/provider/local"
	"github.com/ykigathi/click-movie-studios-sub000/internal/provider/tmdb"
)

// Selector re-evaluates the active provider on every configuration
// update. Callers must re-read Current() per load instead of holding a
// provider reference; loads already in flight keep the provider they
// started with.
type Selector struct {
	logger *slog.Logger

	mu      sync.Mutex
	current catalog.Provider
	offline *local.Provider // shared across updates, dataset is fixed
}

var _ catalog.ProviderSource = (*Selector)(nil)

// NewSelector creates a selector for the given configuration.
func NewSelector(cfg *config.Config, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Selector{
		logger:  logger,
		offline: local.New(),
	}
	s.Update(cfg)
	return s
}

// Current returns the active provider.
func (s *Selector) Current() catalog.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update swaps the active provider to match the new configuration. A
// remote client is rebuilt from scratch so credential, locale, and
// region changes all take effect at once.
func (s *Selector) Update(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cfg.HasCredential() {
		s.current = tmdb.New(cfg.TMDb, s.logger)
		s.logger.Debug("selected remote catalog provider")
		return
	}
	s.current = s.offline
	s.logger.Debug("no credential configured, selected offline catalog")
}
