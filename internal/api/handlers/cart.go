package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/cart"
	"github.com/salonyai/storefront/internal/checkout"
	"github.com/salonyai/storefront/internal/domain"
	"github.com/salonyai/storefront/internal/i18n"
	"github.com/salonyai/storefront/internal/settings"
)

// CartResponse is the cart view returned by every cart endpoint
type CartResponse struct {
	Items        []domain.CartLineItem `json:"items"`
	ItemCount    int                   `json:"itemCount"`
	Subtotal     float64               `json:"subtotal"`
	ShippingCost float64               `json:"shippingCost"`
	Tax          float64               `json:"tax"`
	Total        float64               `json:"total"`
}

// AddCartItemRequest carries the product snapshot the client is adding. The
// payload is validated at the boundary rather than trusted as loose JSON.
type AddCartItemRequest struct {
	Product  domain.Product `json:"product" binding:"required"`
	Quantity int            `json:"quantity"`
}

// UpdateCartItemRequest sets a line item's quantity; zero removes it
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// HandleGetCart handles GET /v1/storefront/:slug/cart
func HandleGetCart(resolver *settings.Resolver, store cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, err := resolver.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		eng, ok := sessionEngine(c, store, logger)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(eng, tenant))
	}
}

// HandleAddCartItem handles POST /v1/storefront/:slug/cart/items
func HandleAddCartItem(resolver *settings.Resolver, store cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if req.Product.ID <= 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "product id is required"})
			return
		}

		tenant, err := resolver.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		eng, ok := sessionEngine(c, store, logger)
		if !ok {
			return
		}

		added, err := eng.AddToCart(c.Request.Context(), req.Product, req.Quantity)
		if err != nil {
			logger.Error("Failed to add to cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		// Hitting the stock ceiling is informational, not a failure.
		lang := sessionLanguage(c.Request.Context(), c, store, tenant)
		name := i18n.ResolveName(req.Product.Translations, lang, i18n.FallbackProductName)
		message := name + " " + i18n.T(lang, "notification.added_to_cart")
		if added == 0 {
			message = name + " " + i18n.T(lang, "notification.max_stock")
		}

		c.JSON(http.StatusOK, gin.H{
			"quantityAdded": added,
			"message":       message,
			"cart":          cartResponse(eng, tenant),
		})
	}
}

// HandleUpdateCartItem handles PUT /v1/storefront/:slug/cart/items/:productId
func HandleUpdateCartItem(resolver *settings.Resolver, store cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		tenant, err := resolver.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		eng, ok := sessionEngine(c, store, logger)
		if !ok {
			return
		}

		if err := eng.UpdateQuantity(c.Request.Context(), productID, *req.Quantity); err != nil {
			logger.Error("Failed to update cart item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(eng, tenant))
	}
}

// HandleRemoveCartItem handles DELETE /v1/storefront/:slug/cart/items/:productId
func HandleRemoveCartItem(resolver *settings.Resolver, store cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}

		tenant, err := resolver.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		eng, ok := sessionEngine(c, store, logger)
		if !ok {
			return
		}

		if err := eng.RemoveFromCart(c.Request.Context(), productID); err != nil {
			logger.Error("Failed to remove cart item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(eng, tenant))
	}
}

// HandleClearCart handles DELETE /v1/storefront/:slug/cart
func HandleClearCart(store cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		eng, ok := sessionEngine(c, store, logger)
		if !ok {
			return
		}
		if err := eng.Clear(c.Request.Context()); err != nil {
			logger.Error("Failed to clear cart", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func cartResponse(eng *cart.Engine, tenant *domain.TenantSettings) CartResponse {
	totals := checkout.ComputeTotals(eng, tenant)
	return CartResponse{
		Items:        eng.Items(),
		ItemCount:    eng.ItemCount(),
		Subtotal:     totals.Subtotal,
		ShippingCost: totals.ShippingCost,
		Tax:          totals.Tax,
		Total:        totals.Total,
	}
}
