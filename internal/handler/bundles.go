package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"eso-store-web/internal/backend"
	"eso-store-web/internal/middleware"
	"eso-store-web/internal/session"
	"eso-store-web/pkg/apierror"
	"eso-store-web/pkg/response"
)

// BundleHandler serves the bundle pages and the bundle creation API.
type BundleHandler struct {
	backend  *backend.Client
	sessions *session.Manager
	renderer *Renderer
}

// NewBundleHandler creates a new bundle handler.
func NewBundleHandler(client *backend.Client, sessions *session.Manager, renderer *Renderer) *BundleHandler {
	return &BundleHandler{backend: client, sessions: sessions, renderer: renderer}
}

// List handles GET /bundles. The create dialog on this page loads the full
// cosmetic catalog lazily through CatalogOptions when first opened.
func (h *BundleHandler) List(w http.ResponseWriter, r *http.Request) {
	token := ""
	if sess := middleware.SessionFromContext(r.Context()); sess != nil {
		token = sess.Token
	}

	bundles, err := h.backend.ListBundles(r.Context(), token)
	if err != nil {
		h.renderer.failPage(w, r, err, "/")
		return
	}

	h.renderer.Render(w, r, "bundles.html", map[string]interface{}{
		"Bundles": bundles,
	})
}

// Detail handles GET /bundles/{id}. Items total and discount are plain
// display math over the member prices; the backend owns the real pricing.
func (h *BundleHandler) Detail(w http.ResponseWriter, r *http.Request) {
	token := ""
	if sess := middleware.SessionFromContext(r.Context()); sess != nil {
		token = sess.Token
	}

	bundle, err := h.backend.GetBundle(r.Context(), token, chi.URLParam(r, "id"))
	if err != nil {
		h.renderer.failPage(w, r, err, "/bundles")
		return
	}

	h.renderer.Render(w, r, "bundle_detail.html", map[string]interface{}{
		"Bundle": bundle,
	})
}

// CreateBundleRequest is the request body for POST /api/bundles.
type CreateBundleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       *int     `json:"price"`
	CosmeticIDs []string `json:"cosmeticIds"`
}

// Create handles POST /api/bundles. Validation failures never reach the
// backend.
func (h *BundleHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	var req CreateBundleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	var details []apierror.FieldError
	if strings.TrimSpace(req.Name) == "" {
		details = append(details, apierror.FieldError{Field: "name", Message: "name is required"})
	}
	if req.Price == nil || *req.Price < 0 {
		details = append(details, apierror.FieldError{Field: "price", Message: "price must be a non-negative number"})
	}
	if len(req.CosmeticIDs) == 0 {
		details = append(details, apierror.FieldError{Field: "cosmeticIds", Message: "select at least one cosmetic"})
	}
	if len(details) > 0 {
		response.Error(w, apierror.ValidationError("invalid bundle", details...))
		return
	}

	bundle, err := h.backend.CreateBundle(r.Context(), sess.Token, backend.CreateBundleInput{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       *req.Price,
		CosmeticIDs: req.CosmeticIDs,
	})
	if err != nil {
		failAPI(w, r, h.sessions, err)
		return
	}

	response.Created(w, bundle)
}

// catalogOptionsLimit bounds the lazy catalog load for the create dialog.
const catalogOptionsLimit = 1000

// CatalogOptions handles GET /api/bundles/catalog: the full cosmetic catalog
// for the create dialog, fetched only when the dialog first opens.
func (h *BundleHandler) CatalogOptions(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())

	page, err := h.backend.ListCosmetics(r.Context(), sess.Token, backend.ListCosmeticsQuery{
		Page:  1,
		Limit: catalogOptionsLimit,
	})
	if err != nil {
		failAPI(w, r, h.sessions, err)
		return
	}

	response.JSONWithMeta(w, http.StatusOK, page.Data, page.Page, page.Limit, int64(page.Total))
}
