package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type DiscountInput struct {
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discountPercentage"`
	Active             bool   `json:"active"`
}

func (c *Client) ListDiscounts(ctx context.Context) ([]Discount, error) {
	var out []Discount
	if err := c.do(ctx, http.MethodGet, "/api/discount", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDiscount(ctx context.Context, in DiscountInput) (Discount, error) {
	var out Discount
	if err := c.do(ctx, http.MethodPost, "/api/discount", nil, in, &out); err != nil {
		return Discount{}, err
	}
	return out, nil
}

func (c *Client) UpdateDiscount(ctx context.Context, id int64, in DiscountInput) (Discount, error) {
	var out Discount
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/discount/%d", id), nil, in, &out); err != nil {
		return Discount{}, err
	}
	return out, nil
}

func (c *Client) DeleteDiscount(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/discount/%d", id), nil, nil, nil)
}

// ValidateDiscount is read-only; the backend decides validity and returns the
// percentage plus an opaque discount id to attach on order creation.
func (c *Client) ValidateDiscount(ctx context.Context, code string) (DiscountValidation, error) {
	q := url.Values{"code": {code}}
	var out DiscountValidation
	if err := c.do(ctx, http.MethodGet, "/api/discount/validate", q, nil, &out); err != nil {
		return DiscountValidation{}, err
	}
	return out, nil
}
