package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/cart"
	"github.com/salonyai/storefront/internal/i18n"
	"github.com/salonyai/storefront/internal/salonapi"
	"github.com/salonyai/storefront/internal/settings"
)

// CategoryView is a category with its text resolved for the session language
type CategoryView struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// ProductView is a product with its text resolved for the session language
type ProductView struct {
	ID            int     `json:"id"`
	CategoryID    int     `json:"categoryId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"imageUrl"`
	InStock       bool    `json:"inStock"`
	StockQuantity int     `json:"stockQuantity"`
}

// HandleListCategories handles GET /v1/storefront/:slug/categories
func HandleListCategories(resolver *settings.Resolver, client *salonapi.Client, store cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, err := resolver.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		skip, take := pageParams(c)
		categories, err := client.ListCategories(c.Request.Context(), tenant.TenantIdentifier, skip, take)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		lang := sessionLanguage(c.Request.Context(), c, store, tenant)

		// A category is displayable only when active and translated into
		// the session language.
		views := make([]CategoryView, 0, len(categories))
		for _, category := range categories {
			if !category.IsActive || !i18n.HasLanguage(category.Translations, lang) {
				continue
			}
			views = append(views, CategoryView{
				ID:          category.ID,
				Name:        i18n.ResolveName(category.Translations, lang, i18n.FallbackCategoryName),
				Description: i18n.ResolveDescription(category.Translations, lang),
				ImageURL:    category.ImageURL,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"items": views,
			"skip":  skip,
			"take":  take,
		})
	}
}

// HandleListProducts handles GET /v1/storefront/:slug/categories/:categoryId/products
func HandleListProducts(resolver *settings.Resolver, client *salonapi.Client, store cart.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.Atoi(c.Param("categoryId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category ID"})
			return
		}

		tenant, err := resolver.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, logger, err)
			return
		}

		skip, take := pageParams(c)
		products, err := client.ListProducts(c.Request.Context(), tenant.TenantIdentifier, categoryID, skip, take)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		lang := sessionLanguage(c.Request.Context(), c, store, tenant)

		views := make([]ProductView, 0, len(products))
		for _, product := range products {
			if !product.IsActive {
				continue
			}
			views = append(views, ProductView{
				ID:            product.ID,
				CategoryID:    product.CategoryID,
				Name:          i18n.ResolveName(product.Translations, lang, i18n.FallbackProductName),
				Description:   i18n.ResolveDescription(product.Translations, lang),
				Price:         product.Price,
				ImageURL:      product.PrimaryImageURL(),
				InStock:       product.InStock,
				StockQuantity: product.StockQuantity,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"items": views,
			"skip":  skip,
			"take":  take,
		})
	}
}

func pageParams(c *gin.Context) (skip, take int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	take, _ = strconv.Atoi(c.DefaultQuery("take", "10"))
	if skip < 0 {
		skip = 0
	}
	if take <= 0 || take > 100 {
		take = 10
	}
	return skip, take
}
