package backend

import (
	"context"
	"io"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the store API. On success it returns the user
// and the session cookies the backend set, so the handler can relay them to
// the browser. On a non-2xx the server's error text is propagated as the
// public message.
func (c *Client) Login(ctx context.Context, email, password string) (User, []*http.Cookie, error) {
	resp, err := c.send(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password})
	if err != nil {
		return User{}, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return User{}, nil, c.statusError(http.MethodPost, "/api/auth/login", resp)
	}

	var u User
	if err := decodeOrEmpty(resp.Body, &u); err != nil {
		return User{}, nil, err
	}
	return u, resp.Cookies(), nil
}

// Logout is best effort: the caller clears the browser cookie regardless of
// the outcome here.
func (c *Client) Logout(ctx context.Context) []*http.Cookie {
	resp, err := c.send(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Cookies()
}

// AuthStatus resolves the session cookie into the current user. Any failure,
// including a network one, means "not authenticated".
func (c *Client) AuthStatus(ctx context.Context) (User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/auth/status", nil, nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}
