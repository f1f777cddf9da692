// ABOUTME: Recommendation orchestrator choosing between the external recommender and the rule-based scorer
// ABOUTME: External failures fall back silently; store failures propagate
package core

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/harper/recipedex/internal/models"
)

// CatalogSummary is the compact view of the catalog and user context handed
// to an external recommender.
type CatalogSummary struct {
	RecipeNames   []string
	Preferences   *models.UserPreferences
	FavoriteNames []string
}

// NameRecommender is the capability seam for the external generative
// recommender: given a catalog summary it returns a subset of recipe names.
// Implementations are treated as untrusted, fallible oracles.
type NameRecommender interface {
	Recommend(ctx context.Context, summary CatalogSummary) ([]string, error)
}

// CatalogStore reads recipes from the catalog.
type CatalogStore interface {
	List(filter models.RecipeFilter) ([]models.Recipe, error)
}

// PreferenceSource reads the current user preferences.
type PreferenceSource interface {
	Current() (*models.UserPreferences, error)
}

// FavoriteSource reads the favorited recipes, newest first.
type FavoriteSource interface {
	ListRecipes() ([]models.Recipe, error)
}

// Recommender orchestrates recommendation requests. It holds no state across
// calls; catalog and preference snapshots are fetched fresh per request.
type Recommender struct {
	catalog   CatalogStore
	prefs     PreferenceSource
	favorites FavoriteSource
	external  NameRecommender
	hourFn    func() int
}

// NewRecommender creates a Recommender backed by the given stores. No
// external recommender is configured by default.
func NewRecommender(catalog CatalogStore, prefs PreferenceSource, favorites FavoriteSource) *Recommender {
	return &Recommender{
		catalog:   catalog,
		prefs:     prefs,
		favorites: favorites,
		hourFn:    func() int { return time.Now().Hour() },
	}
}

// SetNameRecommender configures the optional external recommender. Passing
// nil disables it.
func (r *Recommender) SetNameRecommender(external NameRecommender) {
	r.external = external
}

// SetHourFunc overrides the wall-clock hour provider (for deterministic tests).
func (r *Recommender) SetHourFunc(fn func() int) {
	r.hourFn = fn
}

// Recommend returns up to 5 recipes for the current preferences and
// favorites. The external recommender is tried first when configured; on any
// failure the rule-based scorer answers instead, and no error reaches the
// caller from that path. Store failures do propagate.
func (r *Recommender) Recommend(ctx context.Context) ([]models.Recipe, error) {
	catalog, err := r.catalog.List(models.RecipeFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	prefs, err := r.prefs.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	favorites, err := r.favorites.ListRecipes()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	if r.external != nil {
		if recipes, ok := r.tryExternal(ctx, catalog, prefs, favorites); ok {
			return recipes, nil
		}
	}

	return ScoreAndRank(catalog, prefs, favorites, r.hourFn()), nil
}

// RecommendByIngredients returns up to 5 recipes whose ingredients are
// covered by the available list. The external recommender is never consulted
// on this path.
func (r *Recommender) RecommendByIngredients(ctx context.Context, ingredients []string) ([]models.Recipe, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("%w: ingredients list is required", ErrInvalidInput)
	}

	catalog, err := r.catalog.List(models.RecipeFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return MatchByIngredients(catalog, ingredients), nil
}

// tryExternal runs the external recommender once and maps its answer back to
// catalog recipes by exact name, preserving the external ordering. The second
// return value is false whenever the result is unusable.
func (r *Recommender) tryExternal(ctx context.Context, catalog []models.Recipe, prefs *models.UserPreferences, favorites []models.Recipe) ([]models.Recipe, bool) {
	summary := CatalogSummary{
		RecipeNames:   recipeNames(catalog),
		Preferences:   prefs,
		FavoriteNames: recipeNames(favorites),
	}

	names, err := r.external.Recommend(ctx, summary)
	if err != nil {
		log.Printf("Warning: external recommender failed, using rule-based ranking: %v", err)
		return nil, false
	}

	byName := make(map[string]models.Recipe, len(catalog))
	for _, recipe := range catalog {
		if _, exists := byName[recipe.Name]; !exists {
			byName[recipe.Name] = recipe
		}
	}

	matched := make([]models.Recipe, 0, MaxResults)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		recipe, ok := byName[name]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		matched = append(matched, recipe)
		if len(matched) == MaxResults {
			break
		}
	}

	if len(matched) == 0 {
		log.Printf("Warning: external recommender returned no known recipe names, using rule-based ranking")
		return nil, false
	}

	return matched, true
}

// recipeNames extracts the name list from a recipe slice
func recipeNames(recipes []models.Recipe) []string {
	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name
	}
	return names
}
