package backend

import (
	"context"
	"fmt"
	"net/http"
)

type UserUpdate struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.do(ctx, http.MethodGet, "/api/admin/user", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, in UserUpdate) (User, error) {
	var out User
	path := fmt.Sprintf("/api/admin/user/%d", id)
	if err := c.do(ctx, http.MethodPut, path, nil, in, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/user/%d", id), nil, nil, nil)
}
