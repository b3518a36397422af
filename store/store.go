// Package store provides optional persistence for app access tokens, so that
// multiple processes sharing one credential set reuse a single token instead
// of each running its own client-credentials exchange.
package store

import (
	"context"
	"sync"
	"time"
)

// Token is a cached access token. Expiry already includes the client's
// proactive-renewal margin.
type Token struct {
	AccessToken string    `json:"access_token"`
	Expiry      time.Time `json:"expiry"`
}

// TokenStore persists tokens keyed by client id. Get returns nil, nil when no
// usable token is cached.
type TokenStore interface {
	Get(ctx context.Context, clientID string) (*Token, error)
	Put(ctx context.Context, clientID string, tok *Token) error
}

// MemoryStore is a process-local TokenStore.
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]Token
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]Token)}
}

func (s *MemoryStore) Get(_ context.Context, clientID string) (*Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tok, ok := s.tokens[clientID]
	if !ok {
		return nil, nil
	}
	if !tok.Expiry.IsZero() && !time.Now().Before(tok.Expiry) {
		delete(s.tokens, clientID)
		return nil, nil
	}
	return &tok, nil
}

func (s *MemoryStore) Put(_ context.Context, clientID string, tok *Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[clientID] = *tok
	return nil
}
