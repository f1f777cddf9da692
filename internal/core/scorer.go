// ABOUTME: Rule-based recipe scorer ranking the catalog against user context
// ABOUTME: Additive weights over difficulty, time, preferences, and time-of-day
package core

import (
	"sort"
	"strings"

	"github.com/harper/recipedex/internal/models"
)

// ScoreAndRank assigns each recipe an additive score and returns the top 5 by
// score. The hour parameter is the current wall-clock hour (0-23), injected so
// ranking is deterministic under test. Ties keep catalog order; scores are
// never exposed to callers.
func ScoreAndRank(catalog []models.Recipe, prefs *models.UserPreferences, favorites []models.Recipe, hour int) []models.Recipe {
	if len(catalog) == 0 {
		return []models.Recipe{}
	}
	if prefs == nil {
		prefs = models.DefaultPreferences()
	}

	favoriteIDs := make(map[int64]bool, len(favorites))
	for _, f := range favorites {
		favoriteIDs[f.ID] = true
	}

	type scored struct {
		recipe models.Recipe
		score  int
	}

	candidates := make([]scored, len(catalog))
	for i, recipe := range catalog {
		candidates[i] = scored{
			recipe: recipe,
			score:  scoreRecipe(&recipe, prefs, favoriteIDs, hour),
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > MaxResults {
		candidates = candidates[:MaxResults]
	}

	results := make([]models.Recipe, len(candidates))
	for i, c := range candidates {
		results[i] = c.recipe
	}

	return results
}

// scoreRecipe applies the full rule table to a single recipe. All rules are
// independent and additive.
func scoreRecipe(recipe *models.Recipe, prefs *models.UserPreferences, favoriteIDs map[int64]bool, hour int) int {
	score := 0

	// Prefer beginner-friendly recipes
	switch recipe.Difficulty {
	case models.DifficultyBeginner:
		score += 10
	case models.DifficultyIntermediate:
		score += 5
	}

	// Prefer quick recipes
	if recipe.Time != nil {
		if *recipe.Time <= 15 {
			score += 10
		} else if *recipe.Time <= 30 {
			score += 5
		}
	}

	// Prefer recipes with fewer ingredients
	if len(recipe.Ingredients) <= 5 {
		score += 5
	}

	// Match stated preferences
	if prefs.DifficultyPreference != "" && prefs.DifficultyPreference == recipe.Difficulty {
		score += 8
	}
	if prefs.MaxCookingTime != nil && recipe.Time != nil && *recipe.Time <= *prefs.MaxCookingTime {
		score += 8
	}
	if prefs.Category != "" && prefs.Category == recipe.Category {
		score += 5
	}

	// Dietary restrictions matching recipe tags
	if matchesRestrictions(prefs.DietaryRestrictions, recipe.Tags) {
		score += 5
	}

	// Time-of-day alignment
	switch {
	case hour >= 6 && hour < 11 && recipe.Category == "Breakfast":
		score += 10
	case hour >= 11 && hour < 15 && recipe.Category == "Lunch":
		score += 10
	case hour >= 15 && recipe.Category == "Dinner":
		score += 10
	}

	// Favor variety over recently favorited recipes
	if !favoriteIDs[recipe.ID] {
		score += 3
	}

	return score
}

// matchesRestrictions reports whether any restriction equals any tag,
// case-insensitively.
func matchesRestrictions(restrictions, tags []string) bool {
	if len(restrictions) == 0 || len(tags) == 0 {
		return false
	}

	tagSet := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tagSet[strings.ToLower(tag)] = true
	}

	for _, r := range restrictions {
		if tagSet[strings.ToLower(r)] {
			return true
		}
	}

	return false
}
