package wishlist

import (
	"context"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// Line joins a wishlist item with its product for rendering.
type Line struct {
	Item    backend.WishlistItem
	Product backend.Product
}

func (s *Service) Contains(ctx context.Context, userID, productID int64) (bool, error) {
	return s.api.CheckWishlist(ctx, userID, productID)
}

// Lines fetches the wishlist and resolves each product with a follow-up
// call, sequentially. Products that disappeared from the catalog are
// skipped rather than failing the whole page.
func (s *Service) Lines(ctx context.Context, userID int64) ([]Line, error) {
	items, err := s.api.ListWishlistItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]Line, 0, len(items))
	for _, it := range items {
		p, err := s.api.GetProduct(ctx, it.ProductID)
		if err != nil {
			continue
		}
		out = append(out, Line{Item: it, Product: p})
	}
	return out, nil
}

func (s *Service) Add(ctx context.Context, userID, productID int64) error {
	_, err := s.api.AddWishlistItem(ctx, backend.WishlistAdd{UserID: userID, ProductID: productID})
	return err
}

// Remove needs the wishlist item id, which the check endpoint does not
// return, so it is a two-step operation: list, find, delete. The two calls
// are sequential and not guarded against another session mutating the list
// in between.
func (s *Service) Remove(ctx context.Context, userID, productID int64) error {
	items, err := s.api.ListWishlistItems(ctx, userID)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ProductID == productID {
			return s.api.DeleteWishlistItem(ctx, it.ID)
		}
	}
	// already gone; removing twice is not an error
	return nil
}

// Toggle adds the product when absent and removes it when present,
// reporting the new membership state.
func (s *Service) Toggle(ctx context.Context, userID, productID int64) (bool, error) {
	in, err := s.Contains(ctx, userID, productID)
	if err != nil {
		return false, err
	}
	if in {
		if err := s.Remove(ctx, userID, productID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.Add(ctx, userID, productID); err != nil {
		return false, err
	}
	return true, nil
}
