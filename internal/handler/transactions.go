package handler

import (
	"net/http"

	"eso-store-web/internal/backend"
	"eso-store-web/internal/middleware"
)

// TransactionsHandler serves the transaction history page.
type TransactionsHandler struct {
	backend  *backend.Client
	renderer *Renderer
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(client *backend.Client, renderer *Renderer) *TransactionsHandler {
	return &TransactionsHandler{backend: client, renderer: renderer}
}

// List handles GET /transactions (guarded route). The ledger is read-only;
// this page never mutates anything.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	items, err := h.backend.GetTransactions(r.Context(), sess.Token)
	if err != nil {
		h.renderer.failPage(w, r, err, "/")
		return
	}

	h.renderer.Render(w, r, "transactions.html", map[string]interface{}{
		"Transactions": items,
	})
}
