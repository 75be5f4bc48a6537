package model

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type Product struct {
	ID    uuid.UUID
	Name  string
	Price int64
}

type ProductRepository interface {
	NextID() (uuid.UUID, error)
	Create(ctx context.Context, product *Product) error
	Find(ctx context.Context, id uuid.UUID) (*Product, error)
	List(ctx context.Context) ([]Product, error)
}
