package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"sales/pkg/domain/model"
)

var (
	ErrInvalidPrice = errors.New("price must be at least 1")
)

const minPrice = 1

type ProductService interface {
	AddProduct(ctx context.Context, name string, price int64) (*model.Product, error)
	FindProduct(ctx context.Context, productID uuid.UUID) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}

func NewProductService(repo model.ProductRepository, dispatcher EventDispatcher) ProductService {
	return &productService{repo: repo, dispatcher: dispatcher}
}

type productService struct {
	repo       model.ProductRepository
	dispatcher EventDispatcher
}

// AddProduct does not deduplicate by name; two products may share one.
func (s *productService) AddProduct(ctx context.Context, name string, price int64) (*model.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyField
	}
	if price < minPrice {
		return nil, ErrInvalidPrice
	}

	productID, err := s.repo.NextID()
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:    productID,
		Name:  name,
		Price: price,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.ProductAdded{ProductID: productID, Name: name, Price: price})
	return product, nil
}

func (s *productService) FindProduct(ctx context.Context, productID uuid.UUID) (*model.Product, error) {
	return s.repo.Find(ctx, productID)
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.List(ctx)
}
