// ABOUTME: Ingredient matcher for "cook with what I have" queries
// ABOUTME: Scores recipes by coverage ratio of their ingredients against a pantry list
package core

import (
	"sort"
	"strings"

	"github.com/harper/recipedex/internal/models"
)

const (
	// matchThreshold is the minimum coverage ratio for a recipe to qualify.
	// Recipes at or below it are excluded entirely.
	matchThreshold = 0.3

	// MaxResults caps every recommendation list
	MaxResults = 5
)

// CoverageRatio computes the fraction of a recipe's ingredients satisfied by
// the available list, in [0,1]. Matching is case-insensitive bidirectional
// substring containment, so "2 eggs" matches "egg" and "egg" matches
// "free-range eggs". A recipe with no ingredients scores 0.
func CoverageRatio(recipe *models.Recipe, available []string) float64 {
	if len(recipe.Ingredients) == 0 {
		return 0
	}

	lowered := make([]string, len(available))
	for i, a := range available {
		lowered[i] = strings.ToLower(a)
	}

	matched := 0
	for _, ing := range recipe.Ingredients {
		ing = strings.ToLower(ing)
		for _, av := range lowered {
			if strings.Contains(ing, av) || strings.Contains(av, ing) {
				matched++
				break
			}
		}
	}

	return float64(matched) / float64(len(recipe.Ingredients))
}

// MatchByIngredients ranks the catalog by coverage ratio, drops recipes at or
// below the qualification threshold, and returns at most the top 5. Ties keep
// catalog order.
func MatchByIngredients(catalog []models.Recipe, available []string) []models.Recipe {
	type candidate struct {
		recipe models.Recipe
		ratio  float64
	}

	candidates := make([]candidate, 0, len(catalog))
	for _, recipe := range catalog {
		ratio := CoverageRatio(&recipe, available)
		if ratio > matchThreshold {
			candidates = append(candidates, candidate{recipe: recipe, ratio: ratio})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ratio > candidates[j].ratio
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
