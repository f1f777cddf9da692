// ABOUTME: Recipe is the core catalog record for the recommendation engine
// ABOUTME: List fields are never nil; absent numerics are nil pointers
package models

import "time"

// Difficulty labels used by the catalog and the scorer.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Recipe represents a single catalog entry. Recipes are immutable once
// created; the store assigns the ID on insert.
type Recipe struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Time        *int      `json:"time"`
	Difficulty  string    `json:"difficulty,omitempty"`
	Servings    *int      `json:"servings"`
	ImageURL    string    `json:"image_url,omitempty"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Normalize guarantees the list fields are non-nil so they serialize as
// empty arrays rather than null.
func (r *Recipe) Normalize() {
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
}

// IntPtr is a convenience for building recipes with optional numeric fields.
func IntPtr(v int) *int {
	return &v
}
