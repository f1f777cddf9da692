// ABOUTME: Main entry point for the recipedex HTTP server
// ABOUTME: Initializes storage, seeds the catalog, and serves the REST API
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/harper/recipedex/internal/api"
	"github.com/harper/recipedex/internal/config"
	"github.com/harper/recipedex/internal/core"
	"github.com/harper/recipedex/internal/llm"
	"github.com/harper/recipedex/internal/storage/sqlite"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if n, err := sqlite.Seed(db); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	} else if n > 0 {
		log.Printf("Seeded %d starter recipes", n)
	}

	recipes := sqlite.NewRecipeStore(db)
	preferences := sqlite.NewPreferenceStore(db)
	favorites := sqlite.NewFavoriteStore(db)

	recommender := core.NewRecommender(recipes, preferences, favorites)

	if cfg.OpenAIKey != "" {
		external, err := llm.NewOpenAIRecommenderWithConfig(&llm.ClientConfig{
			APIKey:    cfg.OpenAIKey,
			ChatModel: cfg.ChatModel,
			Timeout:   cfg.Timeout,
		})
		if err != nil {
			log.Printf("Warning: failed to initialize OpenAI recommender: %v", err)
		} else {
			recommender.SetNameRecommender(external)
			log.Printf("OpenAI recommender enabled (model %s)", cfg.ChatModel)
		}
	} else {
		log.Println("Warning: OPENAI_API_KEY not set - using rule-based recommendations only")
	}

	handlers := api.NewHandlers(recipes, preferences, favorites, recommender)
	router := api.NewRouter(handlers)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Recipedex API listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
