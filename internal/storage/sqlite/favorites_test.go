// ABOUTME: Tests for favorite storage
// ABOUTME: Verifies the recipe join, listing order, and foreign key enforcement
package sqlite

import (
	"testing"

	"github.com/harper/recipedex/internal/models"
)

func TestFavoriteStore_AddAndListRecipes(t *testing.T) {
	db := testDB(t)
	recipes := NewRecipeStore(db)
	favorites := NewFavoriteStore(db)

	firstID := insertRecipe(t, recipes, models.Recipe{Name: "Omelette", Category: "Breakfast"})
	secondID := insertRecipe(t, recipes, models.Recipe{Name: "Curry", Category: "Dinner"})

	if _, err := favorites.Add(firstID); err != nil {
		t.Fatalf("Add(%d) error = %v", firstID, err)
	}
	if _, err := favorites.Add(secondID); err != nil {
		t.Fatalf("Add(%d) error = %v", secondID, err)
	}

	listed, err := favorites.ListRecipes()
	if err != nil {
		t.Fatalf("ListRecipes() error = %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("ListRecipes() returned %d recipes, want 2", len(listed))
	}
	// Most recently favorited first
	if listed[0].Name != "Curry" || listed[1].Name != "Omelette" {
		t.Errorf("order = [%s, %s], want [Curry, Omelette]", listed[0].Name, listed[1].Name)
	}
}

func TestFavoriteStore_ListEmpty(t *testing.T) {
	db := testDB(t)
	favorites := NewFavoriteStore(db)

	listed, err := favorites.ListRecipes()
	if err != nil {
		t.Fatalf("ListRecipes() error = %v", err)
	}
	if listed == nil {
		t.Fatal("ListRecipes() returned nil, want empty slice")
	}
	if len(listed) != 0 {
		t.Errorf("ListRecipes() returned %d recipes, want 0", len(listed))
	}
}

func TestFavoriteStore_Remove(t *testing.T) {
	db := testDB(t)
	recipes := NewRecipeStore(db)
	favorites := NewFavoriteStore(db)

	id := insertRecipe(t, recipes, models.Recipe{Name: "Toast"})
	if _, err := favorites.Add(id); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := favorites.Remove(id); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	listed, err := favorites.ListRecipes()
	if err != nil {
		t.Fatalf("ListRecipes() error = %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("ListRecipes() returned %d recipes after remove, want 0", len(listed))
	}
}

func TestFavoriteStore_RemoveMissingIsNoop(t *testing.T) {
	db := testDB(t)
	favorites := NewFavoriteStore(db)

	if err := favorites.Remove(42); err != nil {
		t.Errorf("Remove(42) error = %v, want nil for missing favorite", err)
	}
}

func TestFavoriteStore_AddUnknownRecipeRejected(t *testing.T) {
	db := testDB(t)
	favorites := NewFavoriteStore(db)

	if _, err := favorites.Add(999); err == nil {
		t.Error("Add(999) error = nil, want foreign key violation")
	}
}
