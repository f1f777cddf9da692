// ABOUTME: User preference storage operations for SQLite
// ABOUTME: Reads the latest-updated row; saves update it or insert the first one
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/recipedex/internal/models"
)

// PreferenceStore handles user preference persistence
type PreferenceStore struct {
	db *DB
}

// NewPreferenceStore creates a new PreferenceStore
func NewPreferenceStore(db *DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Current retrieves the active preference record. When no row has been saved
// yet it returns empty defaults, never nil and never an error for absence.
func (s *PreferenceStore) Current() (*models.UserPreferences, error) {
	var (
		prefs          models.UserPreferences
		restrictions   sql.NullString
		cuisines       sql.NullString
		maxCookingTime sql.NullInt64
		difficulty     sql.NullString
		theme          sql.NullString
	)

	err := s.db.QueryRow(`
		SELECT id, dietary_restrictions, cuisine_types, max_cooking_time, difficulty_preference, theme, updated_at
		FROM user_preferences
		ORDER BY updated_at DESC, id DESC
		LIMIT 1
	`).Scan(&prefs.ID, &restrictions, &cuisines, &maxCookingTime, &difficulty, &theme, &prefs.UpdatedAt)

	if err == sql.ErrNoRows {
		return models.DefaultPreferences(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	prefs.DietaryRestrictions = unmarshalList(restrictions)
	prefs.CuisineTypes = unmarshalList(cuisines)
	if maxCookingTime.Valid {
		prefs.MaxCookingTime = models.IntPtr(int(maxCookingTime.Int64))
	}
	if difficulty.Valid {
		prefs.DifficultyPreference = difficulty.String
	}
	if theme.Valid {
		prefs.Theme = theme.String
	}

	return &prefs, nil
}

// Save persists preferences, updating the latest row when one exists and
// inserting the first row otherwise. Returns the row id.
func (s *PreferenceStore) Save(prefs *models.UserPreferences) (int64, error) {
	prefs.Normalize()

	restrictions, err := json.Marshal(prefs.DietaryRestrictions)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal dietary restrictions: %w", err)
	}
	cuisines, err := json.Marshal(prefs.CuisineTypes)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal cuisine types: %w", err)
	}

	theme := prefs.Theme
	if theme == "" {
		theme = "default"
	}

	var existingID int64
	err = s.db.QueryRow(`
		SELECT id FROM user_preferences ORDER BY updated_at DESC, id DESC LIMIT 1
	`).Scan(&existingID)

	if err == sql.ErrNoRows {
		result, err := s.db.Exec(`
			INSERT INTO user_preferences (dietary_restrictions, cuisine_types, max_cooking_time, difficulty_preference, theme)
			VALUES (?, ?, ?, ?, ?)
		`, string(restrictions), string(cuisines), nullInt(prefs.MaxCookingTime),
			nullString(prefs.DifficultyPreference), theme)
		if err != nil {
			return 0, fmt.Errorf("failed to insert preferences: %w", err)
		}
		return result.LastInsertId()
	}
	if err != nil {
		return 0, fmt.Errorf("failed to check preferences: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE user_preferences SET
			dietary_restrictions = ?,
			cuisine_types = ?,
			max_cooking_time = ?,
			difficulty_preference = ?,
			theme = ?,
			updated_at = ?
		WHERE id = ?
	`, string(restrictions), string(cuisines), nullInt(prefs.MaxCookingTime),
		nullString(prefs.DifficultyPreference), theme, time.Now().UTC(), existingID)
	if err != nil {
		return 0, fmt.Errorf("failed to update preferences: %w", err)
	}

	return existingID, nil
}
