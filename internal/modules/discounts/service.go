package discounts

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

func (s *Service) List(ctx context.Context) ([]backend.Discount, error) {
	items, err := s.api.ListDiscounts(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// Save validates locally before any request is sent: an out-of-range
// percentage or a blank code never reaches the API.
func (s *Service) Save(ctx context.Context, id int64, in backend.DiscountInput) (backend.Discount, error) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if fields := Validate(in); len(fields) > 0 {
		return backend.Discount{}, apperr.InvalidErr("The coupon is invalid.", fields)
	}

	if id == 0 {
		return s.api.CreateDiscount(ctx, in)
	}
	return s.api.UpdateDiscount(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteDiscount(ctx, id)
}

// Check asks the backend whether a code is redeemable. Read-only; the
// returned discount id is echoed back on order creation.
func (s *Service) Check(ctx context.Context, code string) (backend.DiscountValidation, error) {
	return s.api.ValidateDiscount(ctx, strings.TrimSpace(code))
}

// Validate returns field errors for a coupon about to be created or updated.
func Validate(in backend.DiscountInput) map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(in.Code) == "" {
		fields["code"] = "This field is required."
	}
	if in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		fields["percentage"] = "Must be between 0 and 100."
	}
	return fields
}
