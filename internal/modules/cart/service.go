package cart

import (
	"context"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/modules/catalog"
	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/shared/apperr"
)

// Flat surcharge for a personalized jersey (player name and number printed).
const PersonalizationFee = 20.0

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

type AddInput struct {
	ProductID    int64
	Size         string
	Quantity     int
	PlayerName   string
	PlayerNumber int
}

func (s *Service) ForUser(ctx context.Context, userID int64) (backend.Cart, error) {
	return s.api.GetUserCart(ctx, userID)
}

// Add appends an item to the user's cart. The cart must be fetched first;
// the backend owns the cart id. The line price is computed from the current
// product price for display, the backend re-prices on order creation.
func (s *Service) Add(ctx context.Context, userID int64, in AddInput) (backend.Cart, error) {
	if !catalog.ValidSize(in.Size) {
		return backend.Cart{}, apperr.InvalidErr("Pick a size first.", map[string]string{"size": "Pick one of the allowed values."})
	}
	if in.Quantity < 1 {
		return backend.Cart{}, apperr.InvalidErr("Quantity must be at least 1.", map[string]string{"quantity": "Must be at least 1."})
	}

	p, err := s.api.GetProduct(ctx, in.ProductID)
	if err != nil {
		return backend.Cart{}, err
	}

	price := p.Price
	if in.PlayerName != "" || in.PlayerNumber > 0 {
		price += PersonalizationFee
	}

	crt, err := s.api.GetUserCart(ctx, userID)
	if err != nil {
		return backend.Cart{}, err
	}

	_, err = s.api.AddCartItem(ctx, backend.CartAdd{
		CartID:       crt.ID,
		ProductID:    in.ProductID,
		Size:         in.Size,
		Quantity:     in.Quantity,
		Price:        price,
		PlayerName:   in.PlayerName,
		PlayerNumber: in.PlayerNumber,
	})
	if err != nil {
		return backend.Cart{}, err
	}

	// refetch so the caller sees the authoritative cart
	return s.api.GetUserCart(ctx, userID)
}

// Count sums the item quantities for the navbar badge.
func Count(c backend.Cart) int {
	n := 0
	for _, it := range c.Items {
		if it.Quantity > 0 {
			n += it.Quantity
		}
	}
	return n
}
