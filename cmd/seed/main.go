package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
)

// Loads the reference catalog and promotion table into the configured
// database. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.NewForEnvironment(cfg.App.Env)
	defer log.Sync() //nolint:errcheck

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products := persistence.NewGormProductRepository(db.DB)
	if err := persistence.SeedCatalog(ctx, products); err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}

	promotions := persistence.NewGormPromotionRepository(db.DB)
	if err := persistence.SeedPromotions(ctx, promotions); err != nil {
		log.Fatal("Failed to seed promotions", zap.Error(err))
	}

	log.Info("Seed complete")
}
