package main

import (
	"fmt"
	"log"
	"os"

	"github.com/autobake/backend/config"
	httpDelivery "github.com/autobake/backend/internal/delivery/http"
	"github.com/autobake/backend/internal/infrastructure/catalog"
	"github.com/autobake/backend/internal/infrastructure/similarity"
	"github.com/autobake/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Autobake Machine Match Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Catalog: %s", cfg.Catalog.CSVPath)

	// Initial catalog load is fatal: the matcher must never start with a
	// missing or malformed catalog.
	loader := catalog.NewCSVLoader(cfg.Catalog.CSVPath)
	store := catalog.NewStore(loader)
	if err := store.Load(); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d machines", store.Size())

	// Initialize usecase layer
	scorer := similarity.NewTokenSortScorer()
	matcher := usecase.NewMatchingService(store, scorer, usecase.MatchConfig{
		CategoryThreshold:  cfg.Matching.CategoryThreshold,
		ProductThreshold:   cfg.Matching.ProductThreshold,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	log.Printf("Matching: category threshold=%d, product threshold=%d, debug=%v",
		cfg.Matching.CategoryThreshold,
		cfg.Matching.ProductThreshold,
		cfg.Matching.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(matcher, func() error {
		if err := store.Reload(); err != nil {
			return err
		}
		matcher.Refresh()
		return nil
	})

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
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
