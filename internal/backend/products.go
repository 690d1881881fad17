package backend

import (
	"context"
	"fmt"
	"net/http"
)

type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Team        string  `json:"team"`
	Licenced    bool    `json:"licenced"`
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/api/product", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/product/%d", id), nil, nil, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPost, "/api/product", nil, in, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in ProductInput) (Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/product/%d", id), nil, in, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/product/%d", id), nil, nil, nil)
}
