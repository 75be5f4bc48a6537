package main

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"sales/pkg/config"
	"sales/pkg/domain/model"
	"sales/pkg/infrastructure/memory"
	"sales/pkg/infrastructure/mongodb"
	"sales/pkg/infrastructure/sqlstore"
)

type repositories struct {
	users    model.UserRepository
	products model.ProductRepository
	orders   model.OrderRepository
	close    func(ctx context.Context) error
}

func openRepositories(ctx context.Context, cnf *config.Config) (*repositories, error) {
	switch cnf.StoreDriver {
	case config.DriverMongo:
		store, err := mongodb.NewStore(ctx, cnf.MongoURI, cnf.MongoDatabase)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = store.Close(ctx)
			return nil, err
		}
		return &repositories{
			users:    store.Users(),
			products: store.Products(),
			orders:   store.Orders(),
			close:    store.Close,
		}, nil
	case config.DriverMySQL:
		store, err := sqlstore.NewStore(cnf.MySQLDSN)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(); err != nil {
			_ = store.Close()
			return nil, err
		}
		return &repositories{
			users:    store.Users(),
			products: store.Products(),
			orders:   store.Orders(),
			close:    func(context.Context) error { return store.Close() },
		}, nil
	case config.DriverMemory:
		log.Warn("Using in-memory store, data is lost on shutdown")
		store := memory.NewStore()
		return &repositories{
			users:    store.Users(),
			products: store.Products(),
			orders:   store.Orders(),
			close:    func(context.Context) error { return nil },
		}, nil
	}
	return nil, errors.Errorf("unknown store driver %q", cnf.StoreDriver)
}
