package main

import (
	"fmt"
	"log"
	"os"

	"github.com/eatwise/backend/config"
	httpDelivery "github.com/eatwise/backend/internal/delivery/http"
	"github.com/eatwise/backend/internal/infrastructure/cache"
	"github.com/eatwise/backend/internal/infrastructure/catalog"
	"github.com/eatwise/backend/internal/infrastructure/openfoodfacts"
	"github.com/eatwise/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting EatWise Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s", cfg.Catalog.Path)

	// Initialize infrastructure dependencies
	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to open food catalog: %v", err)
	}
	defer store.Close()

	barcodeCache := cache.NewMemory()

	externalClient := openfoodfacts.NewClient(openfoodfacts.ClientConfig{
		BaseURL:    cfg.External.BaseURL,
		Timeout:    cfg.External.Timeout,
		RatePerSec: cfg.External.RatePerSec,
		Burst:      cfg.External.Burst,
	})
	log.Printf("External source: %s (timeout: %s)", cfg.External.BaseURL, cfg.External.Timeout)

	// Initialize usecase layer
	foodService := usecase.NewFoodService(
		store,
		externalClient,
		barcodeCache,
		usecase.FoodServiceConfig{
			DefaultLimit: cfg.Search.DefaultLimit,
			MaxLimit:     cfg.Search.MaxLimit,
			CacheTTL:     cfg.Cache.TTL,
		},
	)
	log.Printf("Search: default_limit=%d, max_limit=%d", cfg.Search.DefaultLimit, cfg.Search.MaxLimit)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(foodService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
