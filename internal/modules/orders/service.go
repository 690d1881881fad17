package orders

import (
	"context"
	"errors"
	"sort"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/internal/backend"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

type Service struct {
	api *backend.Client
}

func NewService(api *backend.Client) *Service {
	return &Service{api: api}
}

func (s *Service) AdminList(ctx context.Context) ([]backend.Order, error) {
	items, err := s.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (backend.Order, error) {
	return s.api.GetOrder(ctx, id)
}

// ForUser is the order history screen: most recent first.
func (s *Service) ForUser(ctx context.Context, userID int64) ([]backend.Order, error) {
	items, err := s.api.ListUserOrders(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items, nil
}

// Pending keeps only PENDING orders, ascending by id.
func Pending(items []backend.Order) []backend.Order {
	out := make([]backend.Order, 0, len(items))
	for _, o := range items {
		if o.Status == backend.OrderPending {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CanTransition: only a pending order moves, and only to a terminal state.
func CanTransition(from, to string) bool {
	if from != backend.OrderPending {
		return false
	}
	return to == backend.OrderCompleted || to == backend.OrderCanceled
}

// UpdateStatus re-reads the order and guards the transition before issuing
// the PUT. The guard is advisory; the backend re-validates.
func (s *Service) UpdateStatus(ctx context.Context, id int64, to string) (backend.Order, error) {
	o, err := s.api.GetOrder(ctx, id)
	if err != nil {
		return backend.Order{}, err
	}
	if !CanTransition(o.Status, to) {
		return backend.Order{}, ErrInvalidTransition
	}
	return s.api.UpdateOrder(ctx, id, backend.OrderUpdate{Status: to})
}

func (s *Service) UpdateAddress(ctx context.Context, id int64, in backend.OrderUpdate) (backend.Order, error) {
	in.Status = "" // address-only update
	return s.api.UpdateOrder(ctx, id, in)
}
