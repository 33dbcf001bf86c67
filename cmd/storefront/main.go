package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodcart/internal/catalog"
	"github.com/nikolayk812/foodcart/internal/config"
	"github.com/nikolayk812/foodcart/internal/httpapi"
	"github.com/nikolayk812/foodcart/internal/logger"
	"github.com/nikolayk812/foodcart/internal/port"
	"github.com/nikolayk812/foodcart/internal/repository"
	"github.com/nikolayk812/foodcart/internal/service"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New(logger.Config{Format: "console"})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("storefront stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		menu   port.Catalog = catalog.NewSeeded()
		orders port.OrderRepository
	)

	if cfg.Database.URL != "" {
		pool, err := pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			return err
		}

		menu = repository.NewCatalog(pool)
		orders = repository.NewOrder(pool)
		log.Info().Msg("using postgres catalog and order store")
	} else {
		log.Warn().Msg("DATABASE_URL is empty, serving the seeded catalog without order recording")
	}

	sessions := service.NewSessions(func() *service.CartService {
		return service.NewCartService(menu, service.NewLogNotifier(log), cfg.Pricing.Fees, log)
	})
	checkout := service.NewCheckoutService(orders, cfg.Pricing.Currency, log)

	server := httpapi.NewServer(menu, sessions, checkout, cfg.Pricing.Currency, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.Router(cfg.Server.GinMode),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", srv.Addr).Int("pid", os.Getpid()).Msg("storefront started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("storefront stopped")
	return nil
}
