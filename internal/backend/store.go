package backend

import "context"

// StoreResult is the response of the purchase and refund endpoints. Balance
// is the authoritative post-operation balance; the UI must display it as-is
// and never recompute it locally.
type StoreResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Balance int    `json:"balance"`
}

type purchaseRequest struct {
	CosmeticID string `json:"cosmeticId,omitempty"`
	BundleID   string `json:"bundleId,omitempty"`
}

type refundRequest struct {
	CosmeticID string `json:"cosmeticId"`
}

// PurchaseCosmetic handles POST /store/purchase for a single cosmetic.
func (c *Client) PurchaseCosmetic(ctx context.Context, token, cosmeticID string) (*StoreResult, error) {
	var result StoreResult
	err := c.post(ctx, token, "/store/purchase", purchaseRequest{CosmeticID: cosmeticID}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PurchaseBundle handles POST /store/purchase for a bundle.
func (c *Client) PurchaseBundle(ctx context.Context, token, bundleID string) (*StoreResult, error) {
	var result StoreResult
	err := c.post(ctx, token, "/store/purchase", purchaseRequest{BundleID: bundleID}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RefundCosmetic handles POST /store/refund.
func (c *Client) RefundCosmetic(ctx context.Context, token, cosmeticID string) (*StoreResult, error) {
	var result StoreResult
	err := c.post(ctx, token, "/store/refund", refundRequest{CosmeticID: cosmeticID}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
