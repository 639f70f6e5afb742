package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/zakispin/spinshop/internal/config"
	"github.com/zakispin/spinshop/internal/handler"
	"github.com/zakispin/spinshop/internal/repository"
	"github.com/zakispin/spinshop/internal/service"
	"github.com/zakispin/spinshop/internal/validator"
	"github.com/zakispin/spinshop/pkg/database"
	"github.com/zakispin/spinshop/pkg/kv"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	initLogger(cfg)

	ctx := context.Background()

	// Promo key-value store (offer, cart, identity)
	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to promo store")
	}

	// Orders database
	pool, err := database.NewPool(ctx, cfg.DB.DSN(), 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	app := fiber.New(fiber.Config{
		AppName:      "Spinshop",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())

	validate := validator.New()

	// Repositories
	offerRepo := repository.NewOfferRepository(store)
	cartRepo := repository.NewCartRepository(store)
	identityRepo := repository.NewIdentityRepository(store)
	orderRepo := repository.NewOrderRepository(pool)

	// Services
	offerService := service.NewOfferService(offerRepo, cfg.Offer.TTL)
	offerService.Restore(ctx)
	wheelService := service.NewWheelService(offerService, cfg.Wheel.SpinDuration, cfg.Wheel.Revolutions)
	cartService := service.NewCartService(cartRepo)
	checkoutService := service.NewCheckoutService(orderRepo, cartService, offerService)
	sessionService := service.NewSessionService(identityRepo)

	// Expiry watcher, torn down on shutdown
	watchCtx, stopWatcher := context.WithCancel(ctx)
	go offerService.Watch(watchCtx)

	// Handlers
	wheelHandler := handler.NewWheelHandler(wheelService)
	offerHandler := handler.NewOfferHandler(offerService)
	catalogHandler := handler.NewCatalogHandler(offerService)
	cartHandler := handler.NewCartHandler(cartService, validate)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, validate)
	sessionHandler := handler.NewSessionHandler(sessionService, validate)
	healthHandler := handler.NewHealthHandler(store, pool)

	app.Get("/health", healthHandler.Check)

	app.Get("/api/wheel", wheelHandler.GetWheel)
	app.Post("/api/wheel/spin", wheelHandler.Spin)
	app.Get("/api/wheel/result", wheelHandler.Result)
	app.Post("/api/wheel/reset", wheelHandler.Reset)

	app.Get("/api/offer", offerHandler.GetOffer)
	app.Delete("/api/offer", offerHandler.DeleteOffer)

	app.Get("/api/collections", catalogHandler.ListCollections)
	app.Get("/api/collections/:slug/products", catalogHandler.ListProducts)
	app.Get("/api/products/:id", catalogHandler.GetProduct)

	app.Get("/api/cart", cartHandler.GetCart)
	app.Post("/api/cart/items", cartHandler.AddItem)
	app.Put("/api/cart/items", cartHandler.UpdateItem)
	app.Delete("/api/cart/items/:id", cartHandler.RemoveItem)
	app.Delete("/api/cart", cartHandler.ClearCart)

	app.Post("/api/checkout", checkoutHandler.PlaceOrder)
	app.Get("/api/orders/:number", checkoutHandler.GetOrder)

	app.Get("/api/session", sessionHandler.GetSession)
	app.Put("/api/session", sessionHandler.Login)
	app.Delete("/api/session", sessionHandler.Logout)

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	log.Info().Int("timeout_seconds", cfg.Server.ShutdownTimeout).Msg("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	log.Info().Msg("waiting for in-flight requests to complete...")
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	// Stop the expiry watcher and close stores AFTER server shutdown
	stopWatcher()
	closeStore()
	pool.Close()
	log.Info().Msg("server stopped")
}

// newStore selects the promo store backend from configuration.
func newStore(ctx context.Context, cfg *config.Config) (kv.Store, func(), error) {
	if cfg.KV.Driver == "memory" {
		log.Info().Msg("using in-memory promo store")
		return kv.NewMemoryStore(), func() {}, nil
	}

	redisStore, err := kv.NewRedisStore(ctx, cfg.KV.Addr, cfg.KV.Password, cfg.KV.DB, 5)
	if err != nil {
		return nil, nil, err
	}
	return redisStore, func() {
		if err := redisStore.Close(); err != nil {
			log.Error().Err(err).Msg("error closing redis client")
		}
	}, nil
}

// initLogger configures zerolog based on the application configuration.
func initLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Log.Pretty {
		// Human-readable output for development
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			With().Timestamp().Logger()
	} else {
		// JSON output for production
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
}
