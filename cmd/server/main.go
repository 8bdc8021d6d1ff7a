package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/api"
	"github.com/salonyai/storefront/internal/cart"
	"github.com/salonyai/storefront/internal/checkout"
	"github.com/salonyai/storefront/internal/config"
	"github.com/salonyai/storefront/internal/events"
	"github.com/salonyai/storefront/internal/salonapi"
	"github.com/salonyai/storefront/internal/settings"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting storefront server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("cart_store", cfg.CartStore),
	)

	// Initialize cart store
	var store cart.Store
	switch cfg.CartStore {
	case "redis":
		redisStore := cart.NewRedisStore(cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisStore.Ping(ctx); err != nil {
			cancel()
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cancel()
		store = redisStore
	case "postgres":
		db, err := cart.NewConnection(cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		store = cart.NewPostgresStore(db, logger)
	case "memory":
		logger.Warn("Using in-memory cart store; carts are lost on restart")
		store = cart.NewMemoryStore()
	}

	// Upstream client and tenant settings cache
	client := salonapi.NewClient(cfg.Upstream, logger)
	resolver := settings.NewResolver(client, cfg.SettingsTTL)

	// Optional order-event producer
	var producer *events.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = events.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		producer.Start(context.Background())
		logger.Info("Order event producer started",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)
	}

	checkoutSvc := checkout.NewService(client, producer, logger)

	// Initialize router
	router := api.NewRouter(cfg, client, store, resolver, checkoutSvc, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	// Flush any buffered order events
	if producer != nil {
		producer.Close()
		producer.WaitClosed()
	}

	logger.Info("Server exited")
}
