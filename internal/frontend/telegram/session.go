package telegram

import (
	"sync"

	"github.com/ykigathi/click-movie-studios-sub000/internal/catalog"
)

// view is the listing a chat is currently paging through.
type view struct {
	// Category listing when Category is non-empty, otherwise a search
	// for Query.
	Category catalog.Category
	Query    string
	Page     int
}

// sessionManager tracks per-chat browsing state and access control.
type sessionManager struct {
	mu      sync.Mutex
	views   map[int64]view
	allowed map[int64]bool // nil or empty = allow all
}

// newSessionManager creates a session manager.
// If allowedUserIDs is empty, all users are allowed.
func newSessionManager(allowedUserIDs []int64) *sessionManager {
	allowed := make(map[int64]bool, len(allowedUserIDs))
	for _, id := range allowedUserIDs {
		allowed[id] = true
	}
	return &sessionManager{
		views:   make(map[int64]view),
		allowed: allowed,
	}
}

// isAllowed checks if a user is authorized to use the bot.
func (sm *sessionManager) isAllowed(userID int64) bool {
	if len(sm.allowed) == 0 {
		return true
	}
	return sm.allowed[userID]
}

// setView records the listing a chat is paging through.
func (sm *sessionManager) setView(chatID int64, v view) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.views[chatID] = v
}

// currentView returns the chat's active listing, if any.
func (sm *sessionManager) currentView(chatID int64) (view, bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	v, ok := sm.views[chatID]
	return v, ok
}

// reset clears a chat's browsing state.
func (sm *sessionManager) reset(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.views, chatID)
}
