package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"sales/pkg/config"
	"sales/pkg/domain/service"
	"sales/pkg/infrastructure/event"
	"sales/pkg/infrastructure/password"
	"sales/pkg/infrastructure/pdf"
	"sales/pkg/infrastructure/session"
	"sales/pkg/infrastructure/telemetry"
	"sales/pkg/infrastructure/transport"
)

func serve(c *cli.Context, cnf *config.Config) error {
	ctx := c.Context
	logger := log.StandardLogger()

	repos, err := openRepositories(ctx, cnf)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.close(context.Background()); err != nil {
			log.WithError(err).Error("Failed to close store")
		}
	}()

	redisClient, err := session.Connect(ctx, cnf.RedisURL)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	if cnf.TracingEnabled {
		shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{ServiceName: appID, Endpoint: cnf.TracingEndpoint})
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				log.WithError(err).Error("Failed to flush traces")
			}
		}()
	}

	dispatcher := event.NewLogDispatcher(logger)
	passManager := password.NewSHA256Manager()
	services := transport.Services{
		Auth:     service.NewAuthService(service.AdminCredentials{Username: cnf.AdminUsername, Password: cnf.AdminPassword}, repos.users, passManager, dispatcher),
		Users:    service.NewUserService(repos.users, passManager, dispatcher),
		Products: service.NewProductService(repos.products, dispatcher),
		Cart:     service.NewCartService(repos.products),
		Checkout: service.NewCheckoutService(repos.orders, dispatcher),
		Orders:   service.NewOrderService(repos.orders),
		Invoices: service.NewInvoiceService(repos.orders, pdf.NewInvoiceRenderer(cnf.Currency)),
		Admin:    service.NewAdminService(repos.users, repos.products, repos.orders),
	}

	router := transport.Router(services, session.NewRedisStore(redisClient, cnf.SessionTTL), logger)
	srv := &http.Server{
		Addr:    cnf.ServeHTTPAddress,
		Handler: telemetry.TracingMiddleware(appID, "/health")(router),
	}

	killSignalChan := getKillSignalChan()
	defer signal.Stop(killSignalChan)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(log.Fields{"url": cnf.ServeHTTPAddress, "store": cnf.StoreDriver}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
		case killSignal := <-killSignalChan:
			logKillSignal(killSignal)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cnf.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func getKillSignalChan() chan os.Signal {
	osKillSignalChan := make(chan os.Signal, 1)
	signal.Notify(osKillSignalChan, os.Interrupt, syscall.SIGTERM)
	return osKillSignalChan
}

func logKillSignal(killSignal os.Signal) {
	switch killSignal {
	case os.Interrupt:
		log.Info("Got SIGINT...")
	case syscall.SIGTERM:
		log.Info("Got SIGTERM...")
	}
}
