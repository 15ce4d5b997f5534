package backend

import (
	"bytes"
	"context"
	"net/url"
	"strconv"

	"eso-store-web/internal/model"
)

// DefaultPageLimit is the page size used when the caller does not pick one.
const DefaultPageLimit = 20

// ListCosmeticsQuery holds the catalog filters. Zero values are omitted from
// the outgoing query string, never sent as empty parameters.
type ListCosmeticsQuery struct {
	Search     string
	Type       string
	Rarity     string
	StartDate  string
	EndDate    string
	OnlyNew    bool
	OnlyOnSale bool
	OnlyPromo  bool
	Page       int
	Limit      int
}

// Values builds the query string for GET /cosmetics.
func (q ListCosmeticsQuery) Values() url.Values {
	v := url.Values{}

	setNonEmpty := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	setNonEmpty("search", q.Search)
	setNonEmpty("type", q.Type)
	setNonEmpty("rarity", q.Rarity)
	setNonEmpty("startDate", q.StartDate)
	setNonEmpty("endDate", q.EndDate)

	// Boolean flags only appear when enabled.
	if q.OnlyNew {
		v.Set("onlyNew", "true")
	}
	if q.OnlyOnSale {
		v.Set("onlyOnSale", "true")
	}
	if q.OnlyPromo {
		v.Set("onlyPromo", "true")
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultPageLimit
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))

	return v
}

// ListCosmetics handles GET /cosmetics. A bare-array response is normalized
// into a single-page listing.
func (c *Client) ListCosmetics(ctx context.Context, token string, q ListCosmeticsQuery) (*model.CosmeticPage, error) {
	data, err := c.do(ctx, token, "GET", "/cosmetics", q.Values(), nil)
	if err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		items, err := decodeList[model.Cosmetic](trimmed)
		if err != nil {
			return nil, err
		}
		page := q.Page
		if page < 1 {
			page = 1
		}
		limit := q.Limit
		if limit < 1 {
			limit = DefaultPageLimit
		}
		return &model.CosmeticPage{
			Data:       items,
			Total:      len(items),
			Page:       page,
			Limit:      limit,
			TotalPages: 1,
		}, nil
	}

	var page model.CosmeticPage
	if err := decodePayload(data, &page); err != nil {
		return nil, err
	}
	if page.Page < 1 {
		page.Page = 1
	}
	if page.TotalPages < 1 {
		page.TotalPages = 1
	}
	return &page, nil
}

// GetCosmetic handles GET /cosmetics/:id.
func (c *Client) GetCosmetic(ctx context.Context, token, id string) (*model.Cosmetic, error) {
	var cosmetic model.Cosmetic
	if err := c.get(ctx, token, "/cosmetics/"+url.PathEscape(id), nil, &cosmetic); err != nil {
		return nil, err
	}
	return &cosmetic, nil
}
