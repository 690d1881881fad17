package photos

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// Gallery returns a product's photos with the primary first, then by
// display order, then by id.
func (s *Service) Gallery(ctx context.Context, productID int64) ([]backend.ProductPhoto, error) {
	items, err := s.api.ListProductPhotos(ctx, productID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IsPrimary != b.IsPrimary {
			return a.IsPrimary
		}
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return a.ID < b.ID
	})
	return items, nil
}

// Save creates (photoID == 0) or updates a photo. When the photo is marked
// primary, any other primary photo of the same product is demoted first with
// a separate PUT. The two calls are strictly sequential and the first failure
// aborts; the invariant is best effort only, a concurrent admin session can
// still produce two primaries.
func (s *Service) Save(ctx context.Context, photoID int64, in backend.PhotoInput) (backend.ProductPhoto, error) {
	if in.IsPrimary {
		if err := s.demoteOtherPrimary(ctx, in.ProductID, photoID); err != nil {
			return backend.ProductPhoto{}, err
		}
	}

	if photoID == 0 {
		return s.api.CreateProductPhoto(ctx, in)
	}
	return s.api.UpdateProductPhoto(ctx, photoID, in)
}

func (s *Service) Delete(ctx context.Context, photoID int64) error {
	return s.api.DeleteProductPhoto(ctx, photoID)
}

func (s *Service) demoteOtherPrimary(ctx context.Context, productID, keepID int64) error {
	existing, err := s.api.ListProductPhotos(ctx, productID)
	if err != nil {
		return err
	}
	for _, p := range existing {
		if !p.IsPrimary || p.ID == keepID {
			continue
		}
		_, err := s.api.UpdateProductPhoto(ctx, p.ID, backend.PhotoInput{
			ProductID:    p.ProductID,
			PhotoURL:     p.PhotoURL,
			IsPrimary:    false,
			DisplayOrder: p.DisplayOrder,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidURL checks the photo URL shape before any request goes out. It does
// not probe reachability.
func ValidURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
