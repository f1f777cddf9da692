// ABOUTME: HTTP handlers for recipes, recommendations, settings, and favorites
// ABOUTME: Maps engine errors to status codes; recommendation reads never 500 on external failure
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/harper/recipedex/internal/core"
	"github.com/harper/recipedex/internal/models"
	"github.com/harper/recipedex/internal/storage/sqlite"
)

// Handlers bundles the stores and the recommendation engine behind the routes
type Handlers struct {
	recipes     *sqlite.RecipeStore
	preferences *sqlite.PreferenceStore
	favorites   *sqlite.FavoriteStore
	recommender *core.Recommender
}

// NewHandlers creates the handler set
func NewHandlers(recipes *sqlite.RecipeStore, preferences *sqlite.PreferenceStore, favorites *sqlite.FavoriteStore, recommender *core.Recommender) *Handlers {
	return &Handlers{
		recipes:     recipes,
		preferences: preferences,
		favorites:   favorites,
		recommender: recommender,
	}
}

// Health reports service liveness
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Recipedex API is running",
	})
}

// ListRecipes returns the catalog narrowed by optional filters
func (h *Handlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	filter := models.RecipeFilter{
		Category:   r.URL.Query().Get("category"),
		Difficulty: r.URL.Query().Get("difficulty"),
		Search:     r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("maxTime"); raw != "" {
		maxTime, err := strconv.Atoi(raw)
		if err != nil || maxTime < 0 {
			writeError(w, http.StatusBadRequest, "maxTime must be a non-negative integer")
			return
		}
		filter.MaxTime = &maxTime
	}

	recipes, err := h.recipes.List(filter)
	if err != nil {
		log.Printf("Error fetching recipes: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch recipes")
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// GetRecipe returns a single recipe by id
func (h *Handlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Recipe id must be an integer")
		return
	}

	recipe, err := h.recipes.Get(id)
	if err != nil {
		log.Printf("Error fetching recipe %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch recipe")
		return
	}
	if recipe == nil {
		writeError(w, http.StatusNotFound, "Recipe not found")
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// CreateRecipe inserts a new recipe and returns the stored record
func (h *Handlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var recipe models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid recipe payload")
		return
	}
	if recipe.Name == "" {
		writeError(w, http.StatusBadRequest, "Recipe name is required")
		return
	}

	id, err := h.recipes.Insert(&recipe)
	if err != nil {
		log.Printf("Error creating recipe: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create recipe")
		return
	}

	created, err := h.recipes.Get(id)
	if err != nil || created == nil {
		log.Printf("Error loading created recipe %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to create recipe")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetRecommendations returns up to 5 recipes for the current preferences.
// External-recommender failures are absorbed by the engine, so this only
// errors when the store itself fails.
func (h *Handlers) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recommender.Recommend(r.Context())
	if err != nil {
		log.Printf("Error getting recommendations: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get recommendations")
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// RecommendByIngredients ranks recipes by ingredient coverage
func (h *Handlers) RecommendByIngredients(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Ingredients []string `json:"ingredients"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Ingredients array is required")
		return
	}

	recipes, err := h.recommender.RecommendByIngredients(r.Context(), req.Ingredients)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Ingredients array is required")
			return
		}
		log.Printf("Error getting ingredient-based recommendations: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get recommendations")
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// GetSettings returns the current preferences or empty defaults
func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.preferences.Current()
	if err != nil {
		log.Printf("Error fetching settings: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

// SaveSettings updates (or creates) the singleton preference record
func (h *Handlers) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var prefs models.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid settings payload")
		return
	}

	id, err := h.preferences.Save(&prefs)
	if err != nil {
		log.Printf("Error saving settings: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "id": id})
}

// ListFavorites returns the favorited recipes, newest first
func (h *Handlers) ListFavorites(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.favorites.ListRecipes()
	if err != nil {
		log.Printf("Error fetching favorites: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// AddFavorite marks a recipe as favorited
func (h *Handlers) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RecipeID int64 `json:"recipe_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RecipeID == 0 {
		writeError(w, http.StatusBadRequest, "recipe_id is required")
		return
	}

	recipe, err := h.recipes.Get(req.RecipeID)
	if err != nil {
		log.Printf("Error checking recipe %d: %v", req.RecipeID, err)
		writeError(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}
	if recipe == nil {
		writeError(w, http.StatusNotFound, "Recipe not found")
		return
	}

	id, err := h.favorites.Add(req.RecipeID)
	if err != nil {
		log.Printf("Error adding favorite: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "id": id})
}

// RemoveFavorite clears the favorite mark from a recipe
func (h *Handlers) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Recipe id must be an integer")
		return
	}

	if err := h.favorites.Remove(id); err != nil {
		log.Printf("Error removing favorite: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// writeJSON serializes a response body with the given status
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError serializes an error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
