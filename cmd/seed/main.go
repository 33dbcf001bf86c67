// Command seed applies the schema and writes the built-in catalog into Postgres.
// Reruns update the rows in place.
package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodcart/internal/catalog"
	"github.com/nikolayk812/foodcart/internal/config"
	"github.com/nikolayk812/foodcart/internal/logger"
	"github.com/nikolayk812/foodcart/internal/migrations"
	"github.com/nikolayk812/foodcart/internal/repository"
)

func main() {
	log := logger.New(logger.Config{Format: "console"})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.Database.URL == "" {
		log.Fatal().Msg("DATABASE_URL is empty")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := migrations.Apply(ctx, pool); err != nil {
		log.Error().Err(err).Msg("applying schema failed")
		return
	}

	restaurants := catalog.SeedRestaurants()
	items := catalog.SeedMenuItems()

	if err := repository.SeedCatalog(ctx, pool, restaurants, items); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		return
	}

	log.Info().Int("restaurants", len(restaurants)).Int("menu_items", len(items)).Msg("catalog seeded")
}
