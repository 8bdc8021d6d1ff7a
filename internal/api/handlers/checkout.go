package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/cart"
	"github.com/salonyai/storefront/internal/checkout"
	"github.com/salonyai/storefront/internal/domain"
	"github.com/salonyai/storefront/internal/settings"
)

// CheckoutRequest carries the customer contact fields. All three are
// required; no format validation beyond non-empty.
type CheckoutRequest struct {
	Customer CustomerPayload `json:"customer" binding:"required"`
}

type CustomerPayload struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address" binding:"required"`
}

// HandleCheckout handles POST /v1/storefront/:slug/checkout
func HandleCheckout(resolver *settings.Resolver, store cart.Store, svc *checkout.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
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

		customer := domain.Customer{
			Name:        req.Customer.Name,
			PhoneNumber: req.Customer.PhoneNumber,
			Address:     req.Customer.Address,
		}

		// On failure the cart is left untouched so the user can retry.
		result, err := svc.Submit(c.Request.Context(), tenant, eng, customer)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": result.Message,
			"order":   result.Order,
		})
	}
}
