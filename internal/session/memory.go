package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory implementation of Store.
// Use this for development/testing or single-instance deployments.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

// NewMemoryStore creates a new in-memory session store with automatic
// cleanup of expired sessions.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions:        make(map[string]*Session),
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	go s.cleanup()

	return s
}

// Create persists a new session.
func (s *MemoryStore) Create(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *sess
	s.sessions[sess.ID] = &copied
	return nil
}

// Get retrieves a session by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[id]
	if !exists || sess.IsExpired() || sess.Token == "" {
		return nil, ErrNotFound
	}

	copied := *sess
	return &copied, nil
}

// UpdateBalance patches only the user's balance. No-op when the session is
// gone.
func (s *MemoryStore) UpdateBalance(ctx context.Context, id string, balance int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[id]
	if !exists || sess.IsExpired() {
		return nil
	}

	sess.User.VbucksBalance = balance
	return nil
}

// Delete removes a session by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

// DeleteExpired removes all expired sessions.
func (s *MemoryStore) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, sess := range s.sessions {
		if sess.IsExpired() {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Close stops the background cleanup goroutine.
func (s *MemoryStore) Close() error {
	close(s.stopCleanup)
	return nil
}

// cleanup periodically removes expired sessions.
func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = s.DeleteExpired(context.Background())
		case <-s.stopCleanup:
			return
		}
	}
}
