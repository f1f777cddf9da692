// ABOUTME: Tests for model helpers
// ABOUTME: Normalization keeps list fields non-nil for JSON serialization
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRecipeNormalize(t *testing.T) {
	r := &Recipe{Name: "Bare"}
	r.Normalize()

	if r.Ingredients == nil || r.Steps == nil || r.Tags == nil {
		t.Errorf("Normalize() left nil list fields: %+v", r)
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), `"ingredients":null`) {
		t.Errorf("ingredients serialized as null: %s", data)
	}
}

func TestPreferencesNormalize(t *testing.T) {
	p := &UserPreferences{}
	p.Normalize()

	if p.DietaryRestrictions == nil || p.CuisineTypes == nil {
		t.Errorf("Normalize() left nil list fields: %+v", p)
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()

	if p.Theme != "default" {
		t.Errorf("Theme = %q, want %q", p.Theme, "default")
	}
	if p.DietaryRestrictions == nil || len(p.DietaryRestrictions) != 0 {
		t.Errorf("DietaryRestrictions = %v, want empty non-nil slice", p.DietaryRestrictions)
	}
	if p.MaxCookingTime != nil {
		t.Errorf("MaxCookingTime = %v, want nil", p.MaxCookingTime)
	}
}

func TestRecipeFilterIsZero(t *testing.T) {
	if !(RecipeFilter{}).IsZero() {
		t.Error("empty filter should be zero")
	}
	if (RecipeFilter{Category: "Lunch"}).IsZero() {
		t.Error("filter with category should not be zero")
	}
	if (RecipeFilter{MaxTime: IntPtr(30)}).IsZero() {
		t.Error("filter with max time should not be zero")
	}
}
