package service

import (
	"context"
	"time"

	"sales/pkg/domain/model"
)

type CheckoutService interface {
	PlaceOrder(ctx context.Context, username string, cart *model.Cart) (*model.Order, error)
}

func NewCheckoutService(repo model.OrderRepository, dispatcher EventDispatcher) CheckoutService {
	return &checkoutService{repo: repo, dispatcher: dispatcher}
}

type checkoutService struct {
	repo       model.OrderRepository
	dispatcher EventDispatcher
}

// PlaceOrder persists a snapshot of the cart and then empties it. An empty
// cart is rejected without touching the store, and a failed write leaves the
// cart as it was.
func (s *checkoutService) PlaceOrder(ctx context.Context, username string, cart *model.Cart) (*model.Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, model.ErrCartEmpty
	}

	orderID, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}

	lines := cart.Items()
	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, model.OrderItem{
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	now := time.Now().UTC().Truncate(time.Second)
	order := &model.Order{
		ID:       orderID,
		Username: username,
		PlacedAt: &now,
		Items:    items,
		Total:    cart.Total(),
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	cart.Clear()

	_ = s.dispatcher.Dispatch(model.OrderPlaced{
		OrderID:  order.ID,
		Username: username,
		Total:    order.Total,
		Items:    len(order.Items),
	})
	return order, nil
}
