// ABOUTME: Favorite storage operations for SQLite
// ABOUTME: Favorites reference recipes by id, newest-favorited first
package sqlite

import (
	"fmt"

	"github.com/harper/recipedex/internal/models"
)

// FavoriteStore handles favorite persistence
type FavoriteStore struct {
	db *DB
}

// NewFavoriteStore creates a new FavoriteStore
func NewFavoriteStore(db *DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

// Add marks a recipe as favorited
func (s *FavoriteStore) Add(recipeID int64) (int64, error) {
	result, err := s.db.Exec(`INSERT INTO favorites (recipe_id) VALUES (?)`, recipeID)
	if err != nil {
		return 0, fmt.Errorf("failed to add favorite: %w", err)
	}
	return result.LastInsertId()
}

// Remove deletes all favorite rows for a recipe
func (s *FavoriteStore) Remove(recipeID int64) error {
	_, err := s.db.Exec(`DELETE FROM favorites WHERE recipe_id = ?`, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// ListRecipes returns the favorited recipes joined to their catalog rows,
// most recently favorited first. This is the scorer's input signal.
func (s *FavoriteStore) ListRecipes() ([]models.Recipe, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.name, r.category, r.time, r.difficulty, r.servings, r.image_url, r.ingredients, r.steps, r.tags, r.description, r.created_at
		FROM recipes r
		INNER JOIN favorites f ON r.id = f.recipe_id
		ORDER BY f.created_at DESC, f.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recipes := []models.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite recipe: %w", err)
		}
		recipes = append(recipes, *recipe)
	}

	return recipes, rows.Err()
}
