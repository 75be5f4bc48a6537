package service

import (
	"context"

	"github.com/google/uuid"

	"sales/pkg/domain/model"
)

type CartService interface {
	AddToCart(ctx context.Context, cart *model.Cart, productID uuid.UUID) (*model.CartItem, error)
}

func NewCartService(products model.ProductRepository) CartService {
	return &cartService{products: products}
}

type cartService struct {
	products model.ProductRepository
}

// AddToCart snapshots the product's current name and price into a new cart
// line. Later price changes do not affect lines already in the cart.
func (s *cartService) AddToCart(ctx context.Context, cart *model.Cart, productID uuid.UUID) (*model.CartItem, error) {
	product, err := s.products.Find(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart.Add(*product)

	items := cart.Items()
	item := items[len(items)-1]
	return &item, nil
}
