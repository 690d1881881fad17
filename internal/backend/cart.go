package backend

import (
	"context"
	"fmt"
	"net/http"
)

type CartAdd struct {
	CartID       int64   `json:"cartId"`
	ProductID    int64   `json:"productId"`
	Size         string  `json:"size"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	PlayerName   string  `json:"playerName,omitempty"`
	PlayerNumber int     `json:"playerNumber,omitempty"`
}

// GetUserCart returns the user's open cart. The backend creates one lazily,
// so a logged-in user always has a cart to append to.
func (c *Client) GetUserCart(ctx context.Context, userID int64) (Cart, error) {
	var out Cart
	path := fmt.Sprintf("/api/cart/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return Cart{}, err
	}
	return out, nil
}

func (c *Client) AddCartItem(ctx context.Context, in CartAdd) (CartItem, error) {
	var out CartItem
	if err := c.do(ctx, http.MethodPost, "/api/cart/add", nil, in, &out); err != nil {
		return CartItem{}, err
	}
	return out, nil
}
