package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/pricing"
	"github.com/storefront/backend/internal/domain/promotion"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/session"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer log.Sync() //nolint:errcheck

	log.Info("Starting storefront backend",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database,
		logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level)))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	fees, err := pricingConfig(cfg.Pricing)
	if err != nil {
		log.Fatal("Invalid pricing configuration", zap.Error(err))
	}

	applied, err := session.NewPromotionStore(session.Config{
		Type: session.StoreType(cfg.Promotion.Store),
		TTL:  cfg.Promotion.SessionTTL,
		Redis: session.RedisConfig{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
	})
	if err != nil {
		log.Fatal("Failed to create promotion store", zap.Error(err))
	}
	defer applied.Close()

	products := persistence.NewGormProductRepository(db.DB)
	promotions := persistence.NewGormPromotionRepository(db.DB)
	carts := persistence.NewGormCartRepository(db.DB)
	orders := persistence.NewGormOrderRepository(db.DB)

	cartService := cartapp.NewService(carts, products, orders,
		promotion.NewResolver(promotions), applied, fees)
	catalogService := catalogapp.NewService(products)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.GET("/health", healthHandler(db))

	router.NewRouter(engine).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewProductHandler(catalogService)).
		Register(handler.NewOrderHandler(cartService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()
	log.Info("Server listening", zap.String("addr", srv.Addr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// pricingConfig parses the configured fee model into engine inputs
func pricingConfig(cfg config.PricingConfig) (pricing.Config, error) {
	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		return pricing.Config{}, err
	}
	fee, err := valueobject.NewMoneyUSDFromString(cfg.DeliveryFee)
	if err != nil {
		return pricing.Config{}, err
	}
	threshold, err := valueobject.NewMoneyUSDFromString(cfg.FreeDeliveryThreshold)
	if err != nil {
		return pricing.Config{}, err
	}
	return pricing.Config{
		TaxRate:               taxRate,
		DeliveryFee:           fee,
		FreeDeliveryThreshold: threshold,
	}, nil
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
