// ABOUTME: Recipe storage operations for SQLite
// ABOUTME: Implements filtered listing, lookup by id, and insertion
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/recipedex/internal/models"
)

// RecipeStore handles recipe persistence
type RecipeStore struct {
	db *DB
}

// NewRecipeStore creates a new RecipeStore
func NewRecipeStore(db *DB) *RecipeStore {
	return &RecipeStore{db: db}
}

// buildListQuery translates a filter specification into a parameterized WHERE
// clause. Absent fields impose no constraint; a NULL time never satisfies a
// maxTime bound.
func buildListQuery(filter models.RecipeFilter) (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString("SELECT id, name, category, time, difficulty, servings, image_url, ingredients, steps, tags, description, created_at FROM recipes WHERE 1=1")

	if filter.Category != "" {
		sb.WriteString(" AND category = ?")
		args = append(args, filter.Category)
	}

	if filter.MaxTime != nil {
		sb.WriteString(" AND time <= ?")
		args = append(args, *filter.MaxTime)
	}

	if filter.Difficulty != "" {
		sb.WriteString(" AND difficulty = ?")
		args = append(args, filter.Difficulty)
	}

	if filter.Search != "" {
		sb.WriteString(" AND (name LIKE ? OR description LIKE ? OR tags LIKE ?)")
		term := "%" + filter.Search + "%"
		args = append(args, term, term, term)
	}

	sb.WriteString(" ORDER BY created_at DESC, id DESC")

	return sb.String(), args
}

// List returns all recipes matching the filter, newest first
func (s *RecipeStore) List(filter models.RecipeFilter) ([]models.Recipe, error) {
	query, args := buildListQuery(filter)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	recipes := []models.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, *recipe)
	}

	return recipes, rows.Err()
}

// Get retrieves a recipe by id, returning nil if not found
func (s *RecipeStore) Get(id int64) (*models.Recipe, error) {
	row := s.db.QueryRow(`
		SELECT id, name, category, time, difficulty, servings, image_url, ingredients, steps, tags, description, created_at
		FROM recipes
		WHERE id = ?
	`, id)

	recipe, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return recipe, nil
}

// Insert stores a new recipe and returns its assigned id
func (s *RecipeStore) Insert(recipe *models.Recipe) (int64, error) {
	difficulty := recipe.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyBeginner
	}

	servings := 1
	if recipe.Servings != nil {
		servings = *recipe.Servings
	}

	ingredients, err := marshalList(recipe.Ingredients)
	if err != nil {
		return 0, err
	}
	steps, err := marshalList(recipe.Steps)
	if err != nil {
		return 0, err
	}
	tags, err := marshalList(recipe.Tags)
	if err != nil {
		return 0, err
	}

	result, err := s.db.Exec(`
		INSERT INTO recipes (name, category, time, difficulty, servings, image_url, ingredients, steps, tags, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, recipe.Name, nullString(recipe.Category), nullInt(recipe.Time), difficulty,
		servings, recipe.ImageURL, ingredients, steps, tags, recipe.Description)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}

	return result.LastInsertId()
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRecipe scans a single recipe row, decoding the JSON list columns.
// NULL or malformed list columns become empty slices, never an error.
func scanRecipe(row rowScanner) (*models.Recipe, error) {
	var (
		recipe      models.Recipe
		category    sql.NullString
		cookTime    sql.NullInt64
		difficulty  sql.NullString
		servings    sql.NullInt64
		imageURL    sql.NullString
		ingredients sql.NullString
		steps       sql.NullString
		tags        sql.NullString
		description sql.NullString
	)

	err := row.Scan(&recipe.ID, &recipe.Name, &category, &cookTime, &difficulty,
		&servings, &imageURL, &ingredients, &steps, &tags, &description, &recipe.CreatedAt)
	if err != nil {
		return nil, err
	}

	if category.Valid {
		recipe.Category = category.String
	}
	if cookTime.Valid {
		recipe.Time = models.IntPtr(int(cookTime.Int64))
	}
	if difficulty.Valid {
		recipe.Difficulty = difficulty.String
	}
	if servings.Valid {
		recipe.Servings = models.IntPtr(int(servings.Int64))
	}
	if imageURL.Valid {
		recipe.ImageURL = imageURL.String
	}
	if description.Valid {
		recipe.Description = description.String
	}

	recipe.Ingredients = unmarshalList(ingredients)
	recipe.Steps = unmarshalList(steps)
	recipe.Tags = unmarshalList(tags)

	return &recipe, nil
}

// marshalList serializes a string slice to JSON text, treating nil as empty
func marshalList(list []string) (string, error) {
	if list == nil {
		return "[]", nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to marshal list: %w", err)
	}
	return string(data), nil
}

// unmarshalList decodes a JSON text column into a string slice
func unmarshalList(col sql.NullString) []string {
	if !col.Valid || col.String == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(col.String), &list); err != nil {
		return []string{}
	}
	if list == nil {
		return []string{}
	}
	return list
}

// nullString converts an empty string to sql.NullString
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullInt converts a nil pointer to sql.NullInt64
func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
