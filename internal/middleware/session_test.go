package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eso-store-web/internal/model"
	"eso-store-web/internal/session"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLoadSessionInjectsSession(t *testing.T) {
	store := session.NewMemoryStore()
	defer store.Close()
	mgr := session.NewManager(store, "", false, time.Hour)

	rec := httptest.NewRecorder()
	sess, err := mgr.Issue(context.Background(), rec, "tok", model.SessionUser{ID: "u1", Name: "Ana"})
	require.NoError(t, err)

	var got *session.Session
	handler := LoadSession(mgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: sess.ID})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.User.Name)
}

func TestLoadSessionWithoutCookiePassesThrough(t *testing.T) {
	store := session.NewMemoryStore()
	defer store.Close()
	mgr := session.NewManager(store, "", false, time.Hour)

	var got *session.Session
	handler := LoadSession(mgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Nil(t, got)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSessionRedirectsWithNext(t *testing.T) {
	handler := RequireSession(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/inventory?page=2", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Finventory%3Fpage%3D2", rec.Header().Get("Location"))
}

func TestRequireSessionAllowsAuthenticated(t *testing.T) {
	handler := RequireSession(okHandler())

	ctx := context.WithValue(context.Background(), SessionKey, &session.Session{ID: "ess_1", Token: "tok"})
	req := httptest.NewRequest(http.MethodGet, "/inventory", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireSessionAPIUnauthorizedEnvelope(t *testing.T) {
	handler := RequireSessionAPI(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/store/purchase", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
}
