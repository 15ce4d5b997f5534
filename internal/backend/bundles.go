package backend

import (
	"context"
	"net/url"

	"eso-store-web/internal/model"
)

// CreateBundleInput is the payload for POST /bundles.
type CreateBundleInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       int      `json:"price"`
	CosmeticIDs []string `json:"cosmeticIds"`
}

// ListBundles handles GET /bundles.
func (c *Client) ListBundles(ctx context.Context, token string) ([]model.Bundle, error) {
	data, err := c.do(ctx, token, "GET", "/bundles", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[model.Bundle](data)
}

// GetBundle handles GET /bundles/:id.
func (c *Client) GetBundle(ctx context.Context, token, id string) (*model.Bundle, error) {
	var bundle model.Bundle
	if err := c.get(ctx, token, "/bundles/"+url.PathEscape(id), nil, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// CreateBundle handles POST /bundles and returns the created bundle.
func (c *Client) CreateBundle(ctx context.Context, token string, input CreateBundleInput) (*model.Bundle, error) {
	var bundle model.Bundle
	if err := c.post(ctx, token, "/bundles", input, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}
