// Package session holds the authenticated user state between requests.
// A session is keyed by an opaque cookie ID and carries the backend access
// token plus the user record returned at login. Backends are swappable the
// same way the rest of the app picks storage: by configuration.
package session

import (
	"context"
	"time"

	"eso-store-web/internal/model"
)

// Session is one authenticated browser session.
type Session struct {
	ID        string            `json:"id"`
	Token     string            `json:"token"`
	User      model.SessionUser `json:"user"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// IsExpired reports whether the session is past its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store persists sessions.
//
// A session without a backend token must never be handed out: the token is
// what actually authenticates calls, a user record alone is stale display
// state. Get enforces this by returning ErrNotFound for token-less records.
type Store interface {
	// Create persists a new session.
	Create(ctx context.Context, s *Session) error

	// Get returns the session by ID. Returns ErrNotFound when the session
	// is absent, expired, or carries no backend token.
	Get(ctx context.Context, id string) (*Session, error)

	// UpdateBalance overwrites the user's balance with a backend-reported
	// value. A missing session is a no-op.
	UpdateBalance(ctx context.Context, id string, balance int) error

	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes all expired sessions and reports how many.
	DeleteExpired(ctx context.Context) (int64, error)

	// Close releases the backing resources.
	Close() error
}

// StoreError is a sentinel error type for store failures.
type StoreError string

func (e StoreError) Error() string { return string(e) }

const (
	// ErrNotFound indicates the session does not exist or has expired.
	ErrNotFound StoreError = "session not found"
)
