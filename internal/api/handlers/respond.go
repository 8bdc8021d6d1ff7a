package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/api/middleware"
	"github.com/salonyai/storefront/internal/cart"
	"github.com/salonyai/storefront/internal/domain"
	"github.com/salonyai/storefront/pkg/errors"
)

// respondError translates the error taxonomy to HTTP statuses: NotFound 404,
// Validation 422, upstream rejections 502, everything else 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrValidation:
		body := gin.H{"error": e.Error()}
		if len(e.Fields) > 0 {
			body["fields"] = e.Fields
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	case *errors.ErrUpstream:
		msg := e.Message
		if msg == "" {
			msg = "upstream request failed"
		}
		logger.Error("Upstream request rejected", zap.Int("status", e.Status), zap.String("message", e.Message))
		c.JSON(http.StatusBadGateway, gin.H{"error": msg})
	default:
		logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// sessionEngine builds and loads the cart engine for the request's
// (slug, session) scope.
func sessionEngine(c *gin.Context, store cart.Store, logger *zap.Logger) (*cart.Engine, bool) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session not established"})
		return nil, false
	}
	eng := cart.NewEngine(store, c.Param("slug"), sessionID, logger)
	if err := eng.Load(c.Request.Context()); err != nil {
		logger.Error("Failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return nil, false
	}
	return eng, true
}

// sessionLanguage returns the session's selected language, falling back to
// the tenant's first supported language, then the primary language.
func sessionLanguage(ctx context.Context, c *gin.Context, store cart.Store, settings *domain.TenantSettings) domain.LanguageCode {
	if sessionID, ok := middleware.GetSessionID(c); ok {
		if lang, err := store.GetLanguage(ctx, sessionID); err == nil && lang.IsValid() {
			return lang
		}
	}
	if settings != nil && len(settings.SupportedLanguages) > 0 {
		return settings.SupportedLanguages[0]
	}
	return domain.LanguageEnglish
}
