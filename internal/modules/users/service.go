package users

import (
	"context"
	"sort"
	"strings"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context) ([]backend.User, error) {
	items, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// UpdateEmail keeps the role as-is; resubmitting the unchanged email is a
// valid no-op update and still succeeds.
func (s *Service) UpdateEmail(ctx context.Context, id int64, email, currentRole string) (backend.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return backend.User{}, apperr.InvalidErr("Email is required.", map[string]string{"email": "This field is required."})
	}
	return s.api.UpdateUser(ctx, id, backend.UserUpdate{Email: email, Role: currentRole})
}

// ToggleRole flips USER <-> ADMIN, keeping the email untouched.
func (s *Service) ToggleRole(ctx context.Context, id int64, email, currentRole string) (backend.User, error) {
	next := backend.RoleAdmin
	if currentRole == backend.RoleAdmin {
		next = backend.RoleUser
	}
	return s.api.UpdateUser(ctx, id, backend.UserUpdate{Email: email, Role: next})
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteUser(ctx, id)
}
