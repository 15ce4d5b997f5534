package handler

import (
	"net/http"

	"eso-store-web/internal/backend"
	"eso-store-web/internal/middleware"
)

// InventoryHandler serves the inventory page.
type InventoryHandler struct {
	backend  *backend.Client
	renderer *Renderer
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(client *backend.Client, renderer *Renderer) *InventoryHandler {
	return &InventoryHandler{backend: client, renderer: renderer}
}

// List handles GET /inventory (guarded route). Refunds go through the store
// action API; the page script removes the refunded row, no refetch happens.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	items, err := h.backend.GetInventory(r.Context(), sess.Token)
	if err != nil {
		h.renderer.failPage(w, r, err, "/")
		return
	}

	h.renderer.Render(w, r, "inventory.html", map[string]interface{}{
		"Items": items,
	})
}
