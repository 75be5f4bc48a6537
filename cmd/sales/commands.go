package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"sales/pkg/config"
	"sales/pkg/domain/service"
	"sales/pkg/infrastructure/event"
	"sales/pkg/infrastructure/password"
	"sales/pkg/infrastructure/seed"
	"sales/pkg/infrastructure/sqlstore"
)

func migrate(_ *cli.Context, cnf *config.Config) error {
	if cnf.StoreDriver != config.DriverMySQL {
		return errors.Errorf("migrations only apply to the %s driver", config.DriverMySQL)
	}

	store, err := sqlstore.NewStore(cnf.MySQLDSN)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		return err
	}
	log.Info("Migrations applied")
	return nil
}

func seedCatalog(c *cli.Context, cnf *config.Config) error {
	catalog, err := seed.Load(c.String("file"))
	if err != nil {
		return err
	}

	repos, err := openRepositories(c.Context, cnf)
	if err != nil {
		return err
	}
	defer func() { _ = repos.close(c.Context) }()

	logger := log.StandardLogger()
	dispatcher := event.NewLogDispatcher(logger)
	users := service.NewUserService(repos.users, password.NewSHA256Manager(), dispatcher)
	products := service.NewProductService(repos.products, dispatcher)

	result, err := seed.Apply(c.Context, catalog, users, products, logger)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"usersCreated":    result.UsersCreated,
		"usersSkipped":    result.UsersSkipped,
		"productsAdded":   result.ProductsAdded,
		"productsSkipped": result.ProductsSkipped,
	}).Info("Seed applied")
	return nil
}
