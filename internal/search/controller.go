// Package search drives the search results slice: it debounces raw
// keystroke input into committed queries and maintains the persisted
// recent-search list.
package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

const (
	// DefaultDebounce is the quiet period after the last keystroke
	// before a query commits.
	DefaultDebounce = 400 * time.Millisecond

	// maxRecent caps the persisted recent-search list.
	maxRecent = 5
)

// KV is the slice of the durable store the controller needs for the
// recent-search list.
type KV interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// Controller wraps the search slice. Raw input arrives via SetInput;
// after the debounce interval (or an explicit Commit) the trimmed text
// becomes the active query and the slice loads page one.
type Controller struct {
	slice     *catalog.Slice
	kv        KV
	namespace string
	debounce  time.Duration
	logger    *slog.Logger

	// OnResult, when set, receives the slice state after each
	// committed load. Called from the debounce timer goroutine.
	OnResult func(catalog.State)

	mu     sync.Mutex
	timer  *time.Timer
	raw    string
	query  string // last committed query
	recent []string
}

// New creates a Controller over the search slice. A zero debounce
// commits synchronously inside SetInput, which tests rely on.
func New(slice *catalog.Slice, kv KV, namespace string, debounce time.Duration, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		slice:     slice,
		kv:        kv,
		namespace: namespace,
		debounce:  debounce,
		logger:    logger,
	}
	c.loadRecent()
	return c
}

// SetInput records raw input and (re)starts the debounce timer. The
// query commits only after input has been quiet for the full interval.
func (c *Controller) SetInput(ctx context.Context, raw string) {
	c.mu.Lock()
	c.raw = raw
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.debounce <= 0 {
		c.mu.Unlock()
		c.commit(ctx, raw)
		return
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.commit(ctx, raw)
	})
	c.mu.Unlock()
}

// Commit commits the pending input immediately, bypassing the
// remainder of the debounce interval (e.g. the user pressed enter).
func (c *Controller) Commit(ctx context.Context) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	raw := c.raw
	c.mu.Unlock()
	c.commit(ctx, raw)
}

// Query returns the last committed query, which can trail the raw
// input while the debounce timer runs.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// LoadPage loads another page of the current query's results.
func (c *Controller) LoadPage(ctx context.Context, page int) catalog.State {
	c.mu.Lock()
	query := c.query
	c.mu.Unlock()
	return c.slice.Load(ctx, catalog.Request{Page: page, Query: query})
}

// State returns the current search slice state.
func (c *Controller) State() catalog.State {
	return c.slice.State()
}

// Recent returns the recent-search list, newest first.
func (c *Controller) Recent() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.recent))
	copy(out, c.recent)
	return out
}

// commit makes trimmed the active query. A blank query resets the
// slice to idle without touching the provider.
func (c *Controller) commit(ctx context.Context, raw string) {
	trimmed := strings.TrimSpace(raw)

	c.mu.Lock()
	c.query = trimmed
	c.mu.Unlock()

	if trimmed == "" {
		c.slice.Reset()
		if c.OnResult != nil {
			c.OnResult(c.slice.State())
		}
		return
	}

	c.pushRecent(trimmed)
	state := c.slice.Load(ctx, catalog.Request{Page: 1, Query: trimmed})
	if c.OnResult != nil {
		c.OnResult(state)
	}
}

// pushRecent front-inserts the lower-cased query into the recent list,
// deduplicating and capping, then persists it.
func (c *Controller) pushRecent(query string) {
	entry := strings.ToLower(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	updated := []string{entry}
	for _, r := range c.recent {
		if r != entry {
			updated = append(updated, r)
		}
	}
	if len(updated) > maxRecent {
		updated = updated[:maxRecent]
	}
	c.recent = updated

	data, err := json.Marshal(c.recent)
	if err != nil {
		c.logger.Warn("failed to serialize recent searches", slog.String("error", err.Error()))
		return
	}
	c.kv.Set(c.recentKey(), data)
}

func (c *Controller) loadRecent() {
	data, ok := c.kv.Get(c.recentKey())
	if !ok {
		return
	}
	if err := json.Unmarshal(data, &c.recent); err != nil {
		c.logger.Warn("discarding unreadable recent searches", slog.String("error", err.Error()))
		c.recent = nil
	}
}

// The recent list is persisted independently of the cache: it has no
// TTL envelope and never expires.
func (c *Controller) recentKey() string {
	return c.namespace + "_recent_searches"
}
