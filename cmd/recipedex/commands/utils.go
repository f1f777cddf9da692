// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Engine construction and small display helpers
package commands

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/harper/recipedex/internal/config"
	"github.com/harper/recipedex/internal/core"
	"github.com/harper/recipedex/internal/llm"
	"github.com/harper/recipedex/internal/storage/sqlite"
)

// engine bundles everything a command needs to serve a request
type engine struct {
	db          *sqlite.DB
	recipes     *sqlite.RecipeStore
	preferences *sqlite.PreferenceStore
	favorites   *sqlite.FavoriteStore
	recommender *core.Recommender
}

// openEngine loads config, opens the database, seeds the starter catalog,
// and wires the recommendation engine. The OpenAI recommender is attached
// only when an API key is configured.
func openEngine() (*engine, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if n, err := sqlite.Seed(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seeding catalog: %w", err)
	} else if n > 0 && verbose {
		log.Printf("Seeded %d starter recipes", n)
	}

	eng := &engine{
		db:          db,
		recipes:     sqlite.NewRecipeStore(db),
		preferences: sqlite.NewPreferenceStore(db),
		favorites:   sqlite.NewFavoriteStore(db),
	}
	eng.recommender = core.NewRecommender(eng.recipes, eng.preferences, eng.favorites)

	if cfg.OpenAIKey != "" {
		external, err := llm.NewOpenAIRecommenderWithConfig(&llm.ClientConfig{
			APIKey:    cfg.OpenAIKey,
			ChatModel: cfg.ChatModel,
			Timeout:   cfg.Timeout,
		})
		if err != nil {
			log.Printf("Warning: failed to initialize OpenAI recommender: %v", err)
		} else {
			eng.recommender.SetNameRecommender(external)
		}
	} else if verbose {
		log.Println("OPENAI_API_KEY not set - using rule-based recommendations only")
	}

	return eng, nil
}

// Close releases the database connection
func (e *engine) Close() {
	if err := e.db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error closing database: %v\n", err)
	}
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatMinutes renders an optional minute count for display
func formatMinutes(minutes *int) string {
	if minutes == nil {
		return "-"
	}
	return fmt.Sprintf("%d min", *minutes)
}

// joinOrDash joins a list for display, substituting "-" when empty
func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
