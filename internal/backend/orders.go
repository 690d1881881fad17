package backend

import (
	"context"
	"fmt"
	"net/http"
)

type OrderUpdate struct {
	Status     string `json:"status,omitempty"`
	City       string `json:"city,omitempty"`
	Street     string `json:"street,omitempty"`
	Number     string `json:"number,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

type OrderItemInput struct {
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Size         string  `json:"size"`
	PlayerName   string  `json:"playerName,omitempty"`
	PlayerNumber int     `json:"playerNumber,omitempty"`
}

type OrderCreate struct {
	UserID     int64            `json:"userId"`
	City       string           `json:"city"`
	Street     string           `json:"street"`
	Number     string           `json:"number"`
	PostalCode string           `json:"postalCode"`
	OrderItems []OrderItemInput `json:"orderItems"`
	DiscountID *int64           `json:"discountId,omitempty"`
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, nil, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (c *Client) ListUserOrders(ctx context.Context, userID int64) ([]Order, error) {
	var out []Order
	path := fmt.Sprintf("/api/orders/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id int64, in OrderUpdate) (Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d", id), nil, in, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, in OrderCreate) (Order, error) {
	var out Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", nil, in, &out); err != nil {
		return Order{}, err
	}
	return out, nil
}
