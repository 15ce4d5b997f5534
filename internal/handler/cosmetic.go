package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eso-store-web/internal/backend"
	"eso-store-web/internal/middleware"
)

// CosmeticHandler serves the cosmetic detail page.
type CosmeticHandler struct {
	backend  *backend.Client
	renderer *Renderer
}

// NewCosmeticHandler creates a new cosmetic detail handler.
func NewCosmeticHandler(client *backend.Client, renderer *Renderer) *CosmeticHandler {
	return &CosmeticHandler{backend: client, renderer: renderer}
}

// Detail handles GET /cosmetics/{id}. With a session present, ownership is
// double-checked against the inventory: the catalog's isOwned flag may lag
// behind a purchase, the inventory never does.
func (h *CosmeticHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sess := middleware.SessionFromContext(r.Context())
	token := ""
	if sess != nil {
		token = sess.Token
	}

	cosmetic, err := h.backend.GetCosmetic(r.Context(), token, id)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			h.renderer.Render(w, r, "cosmetic_detail.html", map[string]interface{}{
				"Cosmetic": nil,
			})
			return
		}
		h.renderer.failPage(w, r, err, "/")
		return
	}

	owned := cosmetic.IsOwned
	if sess != nil {
		items, err := h.backend.GetInventory(r.Context(), token)
		switch {
		case errors.Is(err, backend.ErrUnauthorized):
			h.renderer.failPage(w, r, err, "/")
			return
		case err != nil:
			// Best-effort corroboration; fall back to the catalog flag.
			log.Printf("[CosmeticDetail] inventory check failed: %v", err)
		default:
			for _, item := range items {
				if item.Cosmetic.ID == cosmetic.ID {
					owned = true
					break
				}
			}
		}
	}

	h.renderer.Render(w, r, "cosmetic_detail.html", map[string]interface{}{
		"Cosmetic": cosmetic,
		"Owned":    owned,
	})
}
