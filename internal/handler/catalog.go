package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"eso-store-web/internal/backend"
	"eso-store-web/internal/middleware"
	"eso-store-web/internal/model"
)

// CatalogHandler serves the catalog list page.
type CatalogHandler struct {
	backend  *backend.Client
	renderer *Renderer
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(client *backend.Client, renderer *Renderer) *CatalogHandler {
	return &CatalogHandler{backend: client, renderer: renderer}
}

// List handles GET /. The filter form carries no page field, so submitting
// any filter change lands on page 1; only the pagination links move the page.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	query := parseCatalogQuery(r.URL.Query())

	token := ""
	if sess := middleware.SessionFromContext(r.Context()); sess != nil {
		token = sess.Token
	}

	page, err := h.backend.ListCosmetics(r.Context(), token, query)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			h.renderer.failPage(w, r, err, "/")
			return
		}
		// Keep the page usable: show the failure, render an empty listing.
		h.renderer.flash.Add(w, r, FlashError, userMessage(err))
		page = &model.CosmeticPage{Page: 1, TotalPages: 1}
	}

	data := map[string]interface{}{
		"Cosmetics":  page.Data,
		"Page":       page.Page,
		"TotalPages": page.TotalPages,
		"Total":      page.Total,
		"Filters":    query,
		"Types":      model.CosmeticTypes,
		"Rarities":   model.CosmeticRarities,
		"HasPrev":    page.Page > 1,
		"HasNext":    page.Page < page.TotalPages,
		"PrevURL":    catalogPageURL(query, page.Page-1),
		"NextURL":    catalogPageURL(query, page.Page+1),
	}
	h.renderer.Render(w, r, "catalog.html", data)
}

// parseCatalogQuery reads the filter state from the request query. Empty
// values stay empty and are later omitted from the backend call.
func parseCatalogQuery(values url.Values) backend.ListCosmeticsQuery {
	q := backend.ListCosmeticsQuery{
		Search:     strings.TrimSpace(values.Get("search")),
		Type:       values.Get("type"),
		Rarity:     values.Get("rarity"),
		StartDate:  values.Get("startDate"),
		EndDate:    values.Get("endDate"),
		OnlyNew:    values.Get("onlyNew") == "true",
		OnlyOnSale: values.Get("onlyOnSale") == "true",
		OnlyPromo:  values.Get("onlyPromo") == "true",
		Page:       1,
		Limit:      backend.DefaultPageLimit,
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 1 {
		q.Page = page
	}
	return q
}

// catalogPageURL builds a catalog link for the given page, preserving every
// active filter.
func catalogPageURL(q backend.ListCosmeticsQuery, page int) string {
	if page < 1 {
		page = 1
	}
	values := q.Values()
	values.Set("page", strconv.Itoa(page))
	values.Del("limit")
	return "/?" + values.Encode()
}
