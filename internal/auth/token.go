// Package auth implements token acquisition and lifecycle management for
// the Magento admin token grant.
package auth

import (
	"context"
	"sync"
)

// TokenManager handles access token lifecycle.
type TokenManager interface {
	// GetToken returns a valid access token, authenticating if none is
	// held.
	GetToken(ctx context.Context) (string, error)
	// RefreshToken discards the held token and authenticates again.
	RefreshToken(ctx context.Context) (string, error)
	// SetToken seeds the manager with an externally obtained token.
	SetToken(token string)
}

// TokenStore provides thread-safe token storage.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore creates a new token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or empty if none is held.
func (s *TokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set stores a token.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear removes the stored token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
