package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eso-store-web/internal/model"
)

const (
	// sessionIDPrefix marks gateway session IDs.
	sessionIDPrefix = "ess_"

	// DefaultCookieName is the session cookie name.
	DefaultCookieName = "eso_session"

	// DefaultTTL is the session lifetime when the backend token carries no
	// usable expiry of its own (30 days).
	DefaultTTL = 30 * 24 * time.Hour
)

// Manager owns the session cookie and the session lifetime policy.
type Manager struct {
	store        Store
	cookieName   string
	secureCookie bool
	ttl          time.Duration
}

// NewManager creates a session manager over the given store.
func NewManager(store Store, cookieName string, secureCookie bool, ttl time.Duration) *Manager {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		store:        store,
		cookieName:   cookieName,
		secureCookie: secureCookie,
		ttl:          ttl,
	}
}

// Issue creates a session for a freshly logged-in user and sets the session
// cookie. The expiry is the configured TTL, clamped down to the access
// token's own exp claim when the token is a parseable JWT. The claim is never
// trusted for authentication, only for eviction.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, token string, user model.SessionUser) (*Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiresAt := now.Add(m.ttl)
	if exp, ok := tokenExpiry(token); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}
	if !expiresAt.After(now) {
		return nil, fmt.Errorf("access token is already expired")
	}

	sess := &Session{
		ID:        id,
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := m.store.Create(ctx, sess); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return sess, nil
}

// Current returns the session for the request, or ErrNotFound.
func (m *Manager) Current(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNotFound
	}
	return m.store.Get(r.Context(), cookie.Value)
}

// UpdateBalance stores a backend-reported balance on the request's session.
// Without a session cookie this is a no-op.
func (m *Manager) UpdateBalance(r *http.Request, balance int) error {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return m.store.UpdateBalance(r.Context(), cookie.Value, balance)
}

// Destroy removes the session record and clears the cookie. Safe to call
// without an existing session.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		_ = m.store.Delete(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// newSessionID generates an opaque session ID.
func newSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return sessionIDPrefix + hex.EncodeToString(buf), nil
}

// tokenExpiry extracts the exp claim from a JWT access token without
// verifying the signature. Opaque tokens simply report no expiry.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
