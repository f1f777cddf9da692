// ABOUTME: UserPreferences is the singleton settings record fed into the scorer
// ABOUTME: Latest-updated row wins; empty defaults stand in when none is saved
package models

import "time"

// UserPreferences holds the user's stated preferences. At most one record is
// logically "current": the most recently updated row in storage.
type UserPreferences struct {
	ID                   int64    `json:"id,omitempty"`
	DietaryRestrictions  []string `json:"dietary_restrictions"`
	CuisineTypes         []string `json:"cuisine_types"`
	MaxCookingTime       *int     `json:"max_cooking_time"`
	DifficultyPreference string   `json:"difficulty_preference,omitempty"`
	// Category is not written by the settings form today but is scored when set.
	Category  string    `json:"category,omitempty"`
	Theme     string    `json:"theme,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// DefaultPreferences returns the empty-defaults record served when no
// preferences have been saved yet.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		DietaryRestrictions: []string{},
		CuisineTypes:        []string{},
		Theme:               "default",
	}
}

// Normalize guarantees the list fields are non-nil.
func (p *UserPreferences) Normalize() {
	if p.DietaryRestrictions == nil {
		p.DietaryRestrictions = []string{}
	}
	if p.CuisineTypes == nil {
		p.CuisineTypes = []string{}
	}
}
