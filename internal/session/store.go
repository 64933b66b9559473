package session

import (
	"context"
	"sync"

	"github.com/spec-kit/ticket-storefront/internal/domain"
)

// Store is the persistence capability for visitor sessions: the upstream
// access token plus the optionally remembered email, keyed by session ID.
// A missing session reads back as a zero Session, not an error.
type Store interface {
	Get(ctx context.Context, sessionID string) (domain.Session, error)
	Set(ctx context.Context, sessionID string, sess domain.Session) error
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStore is an in-process Store used in tests and single-node setups.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.Session)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sessionID], nil
}

func (s *MemoryStore) Set(_ context.Context, sessionID string, sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = sess
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
