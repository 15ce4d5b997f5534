package backend

import (
	"context"
	"net/url"
	"strconv"

	"eso-store-web/internal/model"
)

// ListPublicUsers handles GET /public/users.
func (c *Client) ListPublicUsers(ctx context.Context, page, limit int) (*model.PublicUserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var result model.PublicUserPage
	if err := c.get(ctx, "", "/public/users", query, &result); err != nil {
		return nil, err
	}
	if result.Page < 1 {
		result.Page = page
	}
	if result.TotalPages < 1 {
		result.TotalPages = 1
	}
	return &result, nil
}
