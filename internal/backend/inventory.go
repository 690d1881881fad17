package backend

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) GetProductInventory(ctx context.Context, productID int64) ([]InventoryItem, error) {
	var out []InventoryItem
	path := fmt.Sprintf("/api/productInventory/product/%d", productID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
