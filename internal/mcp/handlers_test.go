// ABOUTME: Tests for MCP tool handlers over an in-memory database
// ABOUTME: Builds tool requests directly and checks result payloads and error flags
package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/recipedex/internal/core"
	"github.com/harper/recipedex/internal/models"
	"github.com/harper/recipedex/internal/storage/sqlite"
)

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()

	db, err := sqlite.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := sqlite.Seed(db); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	recipes := sqlite.NewRecipeStore(db)
	recommender := core.NewRecommender(recipes, sqlite.NewPreferenceStore(db), sqlite.NewFavoriteStore(db))
	recommender.SetHourFunc(func() int { return 8 })

	return &Handlers{recipes: recipes, recommender: recommender}
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func TestListRecipesTool(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.ListRecipes(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("ListRecipes() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("ListRecipes() returned tool error: %s", resultText(t, result))
	}

	var body struct {
		Recipes []models.Recipe `json:"recipes"`
		Count   int             `json:"count"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &body); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if body.Count != 10 || len(body.Recipes) != 10 {
		t.Errorf("count = %d with %d recipes, want the 10 seeded ones", body.Count, len(body.Recipes))
	}
}

func TestListRecipesTool_Filtered(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.ListRecipes(context.Background(), toolRequest(map[string]any{
		"category": "Breakfast",
		"max_time": float64(10),
	}))
	if err != nil {
		t.Fatalf("ListRecipes() error = %v", err)
	}

	var body struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &body); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	for _, recipe := range body.Recipes {
		if recipe.Category != "Breakfast" {
			t.Errorf("recipe %q has category %q, want Breakfast", recipe.Name, recipe.Category)
		}
		if recipe.Time == nil || *recipe.Time > 10 {
			t.Errorf("recipe %q exceeds max_time filter: %v", recipe.Name, recipe.Time)
		}
	}
}

func TestGetRecipeTool(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.GetRecipe(context.Background(), toolRequest(map[string]any{"id": float64(1)}))
	if err != nil {
		t.Fatalf("GetRecipe() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("GetRecipe() returned tool error: %s", resultText(t, result))
	}

	var recipe models.Recipe
	if err := json.Unmarshal([]byte(resultText(t, result)), &recipe); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if recipe.ID != 1 {
		t.Errorf("ID = %d, want 1", recipe.ID)
	}
}

func TestGetRecipeTool_MissingID(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.GetRecipe(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("GetRecipe() error = %v", err)
	}
	if !result.IsError {
		t.Error("GetRecipe() without id should return a tool error")
	}
}

func TestGetRecipeTool_NotFound(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.GetRecipe(context.Background(), toolRequest(map[string]any{"id": float64(999)}))
	if err != nil {
		t.Fatalf("GetRecipe() error = %v", err)
	}
	if !result.IsError {
		t.Error("GetRecipe(999) should return a tool error")
	}
	if !strings.Contains(resultText(t, result), "not found") {
		t.Errorf("error text = %q, want mention of not found", resultText(t, result))
	}
}

func TestRecommendRecipesTool(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.RecommendRecipes(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("RecommendRecipes() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("RecommendRecipes() returned tool error: %s", resultText(t, result))
	}

	var body struct {
		Recommendations []models.Recipe `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &body); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if len(body.Recommendations) != 5 {
		t.Errorf("got %d recommendations, want 5", len(body.Recommendations))
	}
}

func TestRecommendByIngredientsTool(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.RecommendByIngredients(context.Background(), toolRequest(map[string]any{
		"ingredients": []interface{}{"eggs", "bread", "butter", "salt"},
	}))
	if err != nil {
		t.Fatalf("RecommendByIngredients() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("RecommendByIngredients() returned tool error: %s", resultText(t, result))
	}

	var body struct {
		Recommendations []models.Recipe `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &body); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if len(body.Recommendations) == 0 {
		t.Error("got no matches for common pantry staples")
	}
	if len(body.Recommendations) > 5 {
		t.Errorf("got %d matches, want at most 5", len(body.Recommendations))
	}
}

func TestRecommendByIngredientsTool_MissingArgument(t *testing.T) {
	h := newTestHandlers(t)

	for name, args := range map[string]map[string]any{
		"no arguments":    nil,
		"empty array":     {"ingredients": []interface{}{}},
		"wrong type":      {"ingredients": "eggs"},
		"non-string list": {"ingredients": []interface{}{1, 2}},
	} {
		result, err := h.RecommendByIngredients(context.Background(), toolRequest(args))
		if err != nil {
			t.Fatalf("%s: RecommendByIngredients() error = %v", name, err)
		}
		if !result.IsError {
			t.Errorf("%s: expected a tool error", name)
		}
	}
}

func TestExtractStringArray(t *testing.T) {
	req := toolRequest(map[string]any{
		"ingredients": []interface{}{"eggs", 42, "rice"},
	})

	got := extractStringArray(req, "ingredients")
	if len(got) != 2 || got[0] != "eggs" || got[1] != "rice" {
		t.Errorf("extractStringArray() = %v, want non-string entries dropped", got)
	}

	if got := extractStringArray(req, "missing"); got != nil {
		t.Errorf("extractStringArray(missing) = %v, want nil", got)
	}
}
