package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sales/pkg/domain/model"
)

type Overview struct {
	Users    []model.User
	Products []model.Product
	Orders   []model.Order
}

type AdminService interface {
	Overview(ctx context.Context) (*Overview, error)
}

func NewAdminService(users model.UserRepository, products model.ProductRepository, orders model.OrderRepository) AdminService {
	return &adminService{users: users, products: products, orders: orders}
}

type adminService struct {
	users    model.UserRepository
	products model.ProductRepository
	orders   model.OrderRepository
}

func (s *adminService) Overview(ctx context.Context) (*Overview, error) {
	var overview Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := s.users.List(ctx)
		overview.Users = users
		return err
	})
	g.Go(func() error {
		products, err := s.products.List(ctx)
		overview.Products = products
		return err
	})
	g.Go(func() error {
		orders, err := s.orders.List(ctx)
		overview.Orders = orders
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
