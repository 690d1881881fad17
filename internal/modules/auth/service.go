package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
)

// Service wraps the session endpoints of the store API. Credentials are
// never stored or verified here; login fails or succeeds remotely and the
// session cookie the backend sets is relayed to the browser.
type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

func (s *Service) Login(ctx context.Context, email, password string) (backend.User, []*http.Cookie, error) {
	return s.api.Login(ctx, strings.ToLower(strings.TrimSpace(email)), password)
}

// Logout is best effort against the backend; the caller always clears the
// local cookie.
func (s *Service) Logout(ctx context.Context) []*http.Cookie {
	return s.api.Logout(ctx)
}
