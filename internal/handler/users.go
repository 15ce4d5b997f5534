package handler

import (
	"net/http"
	"strconv"

	"eso-store-web/internal/backend"
)

// UsersHandler serves the public user directory page.
type UsersHandler struct {
	backend  *backend.Client
	renderer *Renderer
}

// NewUsersHandler creates a new users handler.
func NewUsersHandler(client *backend.Client, renderer *Renderer) *UsersHandler {
	return &UsersHandler{backend: client, renderer: renderer}
}

// List handles GET /users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 1 {
		page = p
	}

	result, err := h.backend.ListPublicUsers(r.Context(), page, backend.DefaultPageLimit)
	if err != nil {
		h.renderer.failPage(w, r, err, "/")
		return
	}

	h.renderer.Render(w, r, "users.html", map[string]interface{}{
		"Users":      result.Data,
		"Page":       result.Page,
		"TotalPages": result.TotalPages,
		"HasPrev":    result.Page > 1,
		"HasNext":    result.Page < result.TotalPages,
		"PrevURL":    "/users?page=" + strconv.Itoa(result.Page-1),
		"NextURL":    "/users?page=" + strconv.Itoa(result.Page+1),
	})
}
