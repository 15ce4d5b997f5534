package backend

import (
	"context"

	"eso-store-web/internal/model"
)

// GetInventory handles GET /me/inventory. The result is the full list of
// cosmetics owned by the token's user.
func (c *Client) GetInventory(ctx context.Context, token string) ([]model.InventoryItem, error) {
	data, err := c.do(ctx, token, "GET", "/me/inventory", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[model.InventoryItem](data)
}

// GetTransactions handles GET /me/transactions.
func (c *Client) GetTransactions(ctx context.Context, token string) ([]model.TransactionItem, error) {
	data, err := c.do(ctx, token, "GET", "/me/transactions", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[model.TransactionItem](data)
}
