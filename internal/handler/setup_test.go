package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eso-store-web/internal/backend"
	"eso-store-web/internal/middleware"
	"eso-store-web/internal/model"
	"eso-store-web/internal/session"
)

const testTemplateDir = "../../web/templates"

// testEnv wires the pieces a handler test needs: a fake backend server, an
// in-memory session store and a renderer over the real templates.
type testEnv struct {
	backend  *backend.Client
	sessions *session.Manager
	renderer *Renderer
}

func newTestEnv(t *testing.T, backendHandler http.Handler) *testEnv {
	t.Helper()

	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	sessions := session.NewManager(store, "", false, time.Hour)

	templates := NewTemplateCache()
	require.NoError(t, templates.Load(testTemplateDir))

	renderer := NewRenderer(templates, NewFlash("test-flash-secret"), sessions)

	return &testEnv{
		backend:  backend.New(srv.URL, 5*time.Second),
		sessions: sessions,
		renderer: renderer,
	}
}

// signIn issues a session and returns it along with its cookie.
func (e *testEnv) signIn(t *testing.T, user model.SessionUser) (*session.Session, *http.Cookie) {
	t.Helper()

	rec := httptest.NewRecorder()
	sess, err := e.sessions.Issue(context.Background(), rec, "test-token", user)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return sess, cookies[0]
}

// withSession attaches the session cookie and context value to a request,
// the way the session middleware leaves it for handlers.
func withSession(req *http.Request, sess *session.Session, cookie *http.Cookie) *http.Request {
	req.AddCookie(cookie)
	ctx := context.WithValue(req.Context(), middleware.SessionKey, sess)
	return req.WithContext(ctx)
}

// queuedFlashes reads back the flash messages a handler queued on rec, the
// way the next page render would.
func (e *testEnv) queuedFlashes(t *testing.T, rec *httptest.ResponseRecorder) []FlashMessage {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName {
			req.AddCookie(c)
		}
	}
	return e.renderer.flash.Pop(httptest.NewRecorder(), req)
}
