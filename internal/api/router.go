package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/api/handlers"
	"github.com/salonyai/storefront/internal/api/middleware"
	"github.com/salonyai/storefront/internal/cart"
	"github.com/salonyai/storefront/internal/checkout"
	"github.com/salonyai/storefront/internal/config"
	"github.com/salonyai/storefront/internal/salonapi"
	"github.com/salonyai/storefront/internal/settings"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	cfg *config.Config,
	client *salonapi.Client,
	store cart.Store,
	resolver *settings.Resolver,
	checkoutSvc *checkout.Service,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		storefront := v1.Group("/storefront/:slug")
		storefront.Use(middleware.SessionMiddleware())
		{
			storefront.GET("", handlers.HandleGetStorefront(resolver, logger))
			storefront.PUT("/language", handlers.HandleSetLanguage(resolver, store, logger))

			storefront.GET("/categories", handlers.HandleListCategories(resolver, client, store, logger))
			storefront.GET("/categories/:categoryId/products", handlers.HandleListProducts(resolver, client, store, logger))

			storefront.GET("/cart", handlers.HandleGetCart(resolver, store, logger))
			storefront.POST("/cart/items", handlers.HandleAddCartItem(resolver, store, logger))
			storefront.PUT("/cart/items/:productId", handlers.HandleUpdateCartItem(resolver, store, logger))
			storefront.DELETE("/cart/items/:productId", handlers.HandleRemoveCartItem(resolver, store, logger))
			storefront.DELETE("/cart", handlers.HandleClearCart(store, logger))

			storefront.POST("/checkout", handlers.HandleCheckout(resolver, store, checkoutSvc, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
