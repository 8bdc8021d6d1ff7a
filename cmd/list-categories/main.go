package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/config"
	"github.com/salonyai/storefront/internal/domain"
	"github.com/salonyai/storefront/internal/i18n"
	"github.com/salonyai/storefront/internal/salonapi"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/list-categories/main.go <slug> [take]")
		fmt.Println("Example: go run cmd/list-categories/main.go glamour-salon 25")
		os.Exit(1)
	}

	slug := os.Args[1]
	take := 10
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid take %q: %v\n", os.Args[2], err)
			os.Exit(1)
		}
		take = n
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := salonapi.NewClient(cfg.Upstream, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	settings, err := client.GetWebsiteSettings(ctx, slug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch settings: %v\n", err)
		os.Exit(1)
	}

	categories, err := client.ListCategories(ctx, settings.TenantIdentifier, 0, take)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch categories: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Categories for %s (%d):\n", slug, len(categories))
	for _, category := range categories {
		name := i18n.ResolveName(category.Translations, domain.LanguageEnglish, i18n.FallbackCategoryName)
		status := "active"
		if !category.IsActive {
			status = "inactive"
		}
		fmt.Printf("  %4d  %-40s %s\n", category.ID, name, status)
	}
}
