package products

import (
	"context"
	"sort"
	"strings"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
)

// Sort keys accepted by the listing page. Anything else falls back to
// SortNameAsc.
const (
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// List fetches the full catalog and sorts it client-side; the store API has
// no sort parameter and the catalog is small enough to avoid pagination.
func (s *Service) List(ctx context.Context, sortKey string) ([]backend.Product, error) {
	items, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	Sort(items, sortKey)
	return items, nil
}

// Search filters the fetched catalog by a case-insensitive name/team match.
func (s *Service) Search(ctx context.Context, query string) ([]backend.Product, error) {
	items, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		Sort(items, SortNameAsc)
		return items, nil
	}

	out := items[:0]
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Team), q) {
			out = append(out, p)
		}
	}
	Sort(out, SortNameAsc)
	return out, nil
}

func (s *Service) Get(ctx context.Context, id int64) (backend.Product, error) {
	return s.api.GetProduct(ctx, id)
}

func (s *Service) Create(ctx context.Context, in backend.ProductInput) (backend.Product, error) {
	return s.api.CreateProduct(ctx, in)
}

func (s *Service) Update(ctx context.Context, id int64, in backend.ProductInput) (backend.Product, error) {
	return s.api.UpdateProduct(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteProduct(ctx, id)
}

// Sort orders items in place. The sort is stable; equal keys keep their id
// order from the API.
func Sort(items []backend.Product, key string) {
	less := func(a, b backend.Product) bool {
		return nameLess(a, b)
	}

	switch key {
	case SortNameDesc:
		less = func(a, b backend.Product) bool { return nameLess(b, a) }
	case SortPriceAsc:
		less = func(a, b backend.Product) bool {
			if a.Price != b.Price {
				return a.Price < b.Price
			}
			return a.ID < b.ID
		}
	case SortPriceDesc:
		less = func(a, b backend.Product) bool {
			if a.Price != b.Price {
				return a.Price > b.Price
			}
			return a.ID < b.ID
		}
	}

	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}

func nameLess(a, b backend.Product) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}
