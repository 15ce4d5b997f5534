package handler

import (
	"errors"
	"log"
	"net/http"

	"eso-store-web/internal/backend"
	"eso-store-web/internal/session"
	"eso-store-web/pkg/apierror"
	"eso-store-web/pkg/response"
)

// loginPath is where expired sessions are sent.
const loginPath = "/login"

// failPage handles a backend error on a page route. A 401 tears the session
// down once and redirects to the login page (unless the request already is
// the login page, avoiding redirect loops). Everything else becomes a flash
// with the most specific message available and a redirect to fallback,
// leaving the page in its prior state.
func (r *Renderer) failPage(w http.ResponseWriter, req *http.Request, err error, fallback string) {
	log.Printf("[%s] backend call failed: %v", req.URL.Path, err)

	if errors.Is(err, backend.ErrUnauthorized) {
		r.sessions.Destroy(w, req)
		if req.URL.Path != loginPath {
			r.flash.Add(w, req, FlashWarning, "Your session has expired. Please sign in again.")
			http.Redirect(w, req, loginPath, http.StatusFound)
			return
		}
	}

	r.flash.Add(w, req, FlashError, userMessage(err))
	http.Redirect(w, req, fallback, http.StatusFound)
}

// failAPI handles a backend error on a JSON action route. A 401 destroys the
// session and answers with the 401 envelope; the page script redirects.
func failAPI(w http.ResponseWriter, req *http.Request, sessions *session.Manager, err error) {
	log.Printf("[%s] backend call failed: %v", req.URL.Path, err)

	if errors.Is(err, backend.ErrUnauthorized) {
		sessions.Destroy(w, req)
		response.Error(w, apierror.Unauthorized("Your session has expired. Please sign in again."))
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		response.Error(w, apierror.UpstreamError(apiErr.StatusCode, apiErr.Message))
		return
	}

	response.Error(w, apierror.BadGateway(""))
}

// userMessage extracts the message worth showing a user: the backend's own
// message when there is one, a generic fallback otherwise.
func userMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong while talking to the store. Please try again."
}
