package backend

import (
	"context"
	"fmt"
	"net/http"
)

type WishlistAdd struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
}

type wishlistCheck struct {
	InWishlist bool `json:"inWishlist"`
}

func (c *Client) CheckWishlist(ctx context.Context, userID, productID int64) (bool, error) {
	var out wishlistCheck
	path := fmt.Sprintf("/api/wishlist/user/%d/check/%d", userID, productID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return false, err
	}
	return out.InWishlist, nil
}

func (c *Client) ListWishlistItems(ctx context.Context, userID int64) ([]WishlistItem, error) {
	var out []WishlistItem
	path := fmt.Sprintf("/api/wishlist/user/%d/items", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddWishlistItem(ctx context.Context, in WishlistAdd) (WishlistItem, error) {
	var out WishlistItem
	if err := c.do(ctx, http.MethodPost, "/api/wishlist/add", nil, in, &out); err != nil {
		return WishlistItem{}, err
	}
	return out, nil
}

func (c *Client) DeleteWishlistItem(ctx context.Context, itemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/wishlistItems/%d", itemID), nil, nil, nil)
}
