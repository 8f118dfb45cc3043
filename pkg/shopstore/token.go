package shopstore

import "sync"

// TokenHolder stores the bearer token of a single adapter instance. The
// zero value is an empty holder ready for use. Concurrent SetToken calls
// are safe; the last write wins.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

// Token returns the stored token, or "" if none has been set.
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SetToken replaces the stored token.
func (h *TokenHolder) SetToken(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}
