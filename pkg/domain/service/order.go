package service

import (
	"context"
	"slices"

	"sales/pkg/domain/model"
)

type OrderService interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	ListUserOrders(ctx context.Context, username string) ([]model.Order, error)
	FindOrder(ctx context.Context, orderRef string) (*model.Order, error)
}

func NewOrderService(repo model.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

type orderService struct {
	repo model.OrderRepository
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.List(ctx)
}

// ListUserOrders returns the user's orders newest first. Orders without a
// timestamp sort last.
func (s *orderService) ListUserOrders(ctx context.Context, username string) ([]model.Order, error) {
	orders, err := s.repo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(orders, func(a, b model.Order) int {
		switch {
		case a.PlacedAt == nil && b.PlacedAt == nil:
			return 0
		case a.PlacedAt == nil:
			return 1
		case b.PlacedAt == nil:
			return -1
		}
		return b.PlacedAt.Compare(*a.PlacedAt)
	})
	return orders, nil
}

func (s *orderService) FindOrder(ctx context.Context, orderRef string) (*model.Order, error) {
	return s.repo.Find(ctx, orderRef)
}
