package middleware

import (
	"context"
	"net/http"
	"net/url"

	"eso-store-web/internal/session"
	"eso-store-web/pkg/apierror"
)

// SessionKey is the context key for the current session.
const SessionKey contextKey = "session"

// LoadSession resolves the session cookie on every request and, when it maps
// to a live session, puts the session into the request context. Requests
// without a valid session pass through untouched; the guards below decide
// what that means per route.
func LoadSession(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := manager.Current(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession guards page routes. Unauthenticated navigation is redirected
// to the login page with the originally requested URL in the next parameter,
// so a successful login can return the user there.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			target := "/login?next=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSessionAPI guards JSON action routes with a 401 envelope instead of
// a redirect; the page script handles the navigation.
func RequireSessionAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromContext(r.Context()) == nil {
			writeError(w, apierror.Unauthorized("You need to sign in first"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext retrieves the current session from request context.
func SessionFromContext(ctx context.Context) *session.Session {
	if sess, ok := ctx.Value(SessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// writeError writes an API error response.
func writeError(w http.ResponseWriter, err *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	w.Write(err.ToJSON())
}
