package handler

import (
	"encoding/json"
	"net/http"

	"eso-store-web/internal/backend"
	"eso-store-web/internal/middleware"
	"eso-store-web/internal/session"
	"eso-store-web/pkg/apierror"
	"eso-store-web/pkg/response"
)

// StoreHandler serves the purchase and refund JSON actions backing the
// no-reload buttons. The session balance is only ever overwritten with the
// balance the backend returned for the very call, never a local guess.
type StoreHandler struct {
	backend  *backend.Client
	sessions *session.Manager
}

// NewStoreHandler creates a new store action handler.
func NewStoreHandler(client *backend.Client, sessions *session.Manager) *StoreHandler {
	return &StoreHandler{backend: client, sessions: sessions}
}

// PurchaseRequest is the request body for POST /api/store/purchase.
// Exactly one of the two IDs must be set.
type PurchaseRequest struct {
	CosmeticID string `json:"cosmeticId,omitempty"`
	BundleID   string `json:"bundleId,omitempty"`
}

// RefundRequest is the request body for POST /api/store/refund.
type RefundRequest struct {
	CosmeticID string `json:"cosmeticId"`
}

// Purchase handles POST /api/store/purchase.
func (h *StoreHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if (req.CosmeticID == "") == (req.BundleID == "") {
		response.Error(w, apierror.BadRequest("exactly one of cosmeticId or bundleId is required"))
		return
	}

	var result *backend.StoreResult
	var err error
	if req.CosmeticID != "" {
		result, err = h.backend.PurchaseCosmetic(r.Context(), sess.Token, req.CosmeticID)
	} else {
		result, err = h.backend.PurchaseBundle(r.Context(), sess.Token, req.BundleID)
	}
	if err != nil {
		failAPI(w, r, h.sessions, err)
		return
	}

	if result.Success {
		if err := h.sessions.UpdateBalance(r, result.Balance); err != nil {
			failAPI(w, r, h.sessions, err)
			return
		}
	}

	response.OK(w, result)
}

// Refund handles POST /api/store/refund.
func (h *StoreHandler) Refund(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	var req RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if req.CosmeticID == "" {
		response.Error(w, apierror.BadRequest("cosmeticId is required"))
		return
	}

	result, err := h.backend.RefundCosmetic(r.Context(), sess.Token, req.CosmeticID)
	if err != nil {
		failAPI(w, r, h.sessions, err)
		return
	}

	if result.Success {
		if err := h.sessions.UpdateBalance(r, result.Balance); err != nil {
			failAPI(w, r, h.sessions, err)
			return
		}
	}

	response.OK(w, result)
}
