package backend

import (
	"context"
	"fmt"
	"net/http"
)

type PhotoInput struct {
	ProductID    int64  `json:"productId"`
	PhotoURL     string `json:"photoUrl"`
	IsPrimary    bool   `json:"isPrimary"`
	DisplayOrder int    `json:"displayOrder"`
}

func (c *Client) ListProductPhotos(ctx context.Context, productID int64) ([]ProductPhoto, error) {
	var out []ProductPhoto
	path := fmt.Sprintf("/api/productPhotos/%d", productID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProductPhoto(ctx context.Context, in PhotoInput) (ProductPhoto, error) {
	var out ProductPhoto
	if err := c.do(ctx, http.MethodPost, "/api/productPhotos", nil, in, &out); err != nil {
		return ProductPhoto{}, err
	}
	return out, nil
}

func (c *Client) UpdateProductPhoto(ctx context.Context, id int64, in PhotoInput) (ProductPhoto, error) {
	var out ProductPhoto
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/productPhotos/%d", id), nil, in, &out); err != nil {
		return ProductPhoto{}, err
	}
	return out, nil
}

func (c *Client) DeleteProductPhoto(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/productPhotos/%d", id), nil, nil, nil)
}
