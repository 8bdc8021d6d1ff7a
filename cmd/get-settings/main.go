package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/salonyai/storefront/internal/config"
	"github.com/salonyai/storefront/internal/salonapi"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/get-settings/main.go <slug>")
		fmt.Println("Example: go run cmd/get-settings/main.go glamour-salon")
		os.Exit(1)
	}

	slug := os.Args[1]

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

	out, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to format settings: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}
