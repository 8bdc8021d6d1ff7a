package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/api/middleware"
	"github.com/salonyai/storefront/internal/cart"
	"github.com/salonyai/storefront/internal/domain"
	"github.com/salonyai/storefront/internal/settings"
)

// HandleGetStorefront handles GET /v1/storefront/:slug
func HandleGetStorefront(resolver *settings.Resolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, err := resolver.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, tenant)
	}
}

// SetLanguageRequest selects the session's display language
type SetLanguageRequest struct {
	LanguageCode int `json:"languageCode" binding:"required"`
}

// HandleSetLanguage handles PUT /v1/storefront/:slug/language
func HandleSetLanguage(resolver *settings.Resolver, store cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetLanguageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		lang := domain.LanguageCode(req.LanguageCode)
		if !lang.IsValid() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown language code"})
			return
		}

		tenant, err := resolver.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if len(tenant.SupportedLanguages) > 0 && !contains(tenant.SupportedLanguages, lang) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "language not supported by this storefront"})
			return
		}

		sessionID, ok := middleware.GetSessionID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session not established"})
			return
		}
		if err := store.SetLanguage(c.Request.Context(), sessionID, lang); err != nil {
			logger.Error("Failed to save language", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"languageCode": int(lang),
			"isRTL":        lang.IsRTL(),
		})
	}
}

func contains(languages []domain.LanguageCode, lang domain.LanguageCode) bool {
	for _, l := range languages {
		if l == lang {
			return true
		}
	}
	return false
}
