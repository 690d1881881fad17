package checkout

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
)

var ErrCartEmpty = errors.New("cart is empty")

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

// Quote is the client-side price preview. The backend recomputes the
// authoritative total on order creation; these numbers only drive the
// checkout summary.
type Quote struct {
	Subtotal   float64
	Discount   float64
	Total      float64
	Pct        int
	DiscountID *int64
	Applied    bool
}

// Subtotal sums the cart line prices.
func Subtotal(items []backend.CartItem) float64 {
	var sum float64
	for _, it := range items {
		q := it.Quantity
		if q < 1 {
			q = 1
		}
		sum += it.Price * float64(q)
	}
	return round2(sum)
}

// ApplyDiscount computes discountAmount = subtotal * pct / 100 and the
// resulting total, both rounded to cents.
func ApplyDiscount(subtotal float64, v backend.DiscountValidation) Quote {
	q := Quote{Subtotal: subtotal, Total: subtotal}
	if !v.Valid {
		return q
	}
	q.Applied = true
	q.Pct = v.DiscountPercentage
	q.Discount = round2(subtotal * float64(v.DiscountPercentage) / 100)
	q.Total = round2(subtotal - q.Discount)
	id := v.DiscountID
	q.DiscountID = &id
	return q
}

// BuildQuote prices the cart, consulting the backend only when a coupon code
// is present. An invalid coupon is not an error; the quote just stays
// undiscounted.
func (s *Service) BuildQuote(ctx context.Context, crt backend.Cart, couponCode string) (Quote, error) {
	sub := Subtotal(crt.Items)

	code := strings.TrimSpace(couponCode)
	if code == "" {
		return Quote{Subtotal: sub, Total: sub}, nil
	}

	v, err := s.api.ValidateDiscount(ctx, code)
	if err != nil {
		return Quote{}, err
	}
	return ApplyDiscount(sub, v), nil
}

type Address struct {
	City       string
	Street     string
	Number     string
	PostalCode string
}

// Submit posts the order built from the cart lines plus the discount id when
// a coupon was applied. The backend clears the cart server-side on success.
func (s *Service) Submit(ctx context.Context, userID int64, crt backend.Cart, addr Address, discountID *int64) (backend.Order, error) {
	if len(crt.Items) == 0 {
		return backend.Order{}, ErrCartEmpty
	}

	items := make([]backend.OrderItemInput, 0, len(crt.Items))
	for _, it := range crt.Items {
		items = append(items, backend.OrderItemInput{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			Price:        it.Price,
			Size:         it.Size,
			PlayerName:   it.PlayerName,
			PlayerNumber: it.PlayerNumber,
		})
	}

	return s.api.CreateOrder(ctx, backend.OrderCreate{
		UserID:     userID,
		City:       strings.TrimSpace(addr.City),
		Street:     strings.TrimSpace(addr.Street),
		Number:     strings.TrimSpace(addr.Number),
		PostalCode: strings.TrimSpace(addr.PostalCode),
		OrderItems: items,
		DiscountID: discountID,
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
