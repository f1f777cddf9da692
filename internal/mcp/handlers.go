// ABOUTME: MCP tool handler implementations for the recipe service
// ABOUTME: Thin adapters from tool arguments to the stores and the recommendation engine
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/recipedex/internal/core"
	"github.com/harper/recipedex/internal/models"
	"github.com/harper/recipedex/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	recipes     *sqlite.RecipeStore
	recommender *core.Recommender
}

// ListRecipes handles the list_recipes tool
func (h *Handlers) ListRecipes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := models.RecipeFilter{
		Category:   request.GetString("category", ""),
		Difficulty: request.GetString("difficulty", ""),
		Search:     request.GetString("search", ""),
	}

	if maxTime := request.GetInt("max_time", -1); maxTime >= 0 {
		filter.MaxTime = &maxTime
	}

	recipes, err := h.recipes.List(filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list recipes: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"recipes": recipes, "count": len(recipes)})
}

// GetRecipe handles the get_recipe tool
func (h *Handlers) GetRecipe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetInt("id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("id argument is required and must be a positive number"), nil
	}

	recipe, err := h.recipes.Get(int64(id))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get recipe: %v", err)), nil
	}
	if recipe == nil {
		return mcp.NewToolResultError(fmt.Sprintf("recipe %d not found", id)), nil
	}

	return jsonResult(recipe)
}

// RecommendRecipes handles the recommend_recipes tool
func (h *Handlers) RecommendRecipes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recipes, err := h.recommender.Recommend(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get recommendations: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"recommendations": recipes})
}

// RecommendByIngredients handles the recommend_by_ingredients tool
func (h *Handlers) RecommendByIngredients(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ingredients := extractStringArray(request, "ingredients")
	if len(ingredients) == 0 {
		return mcp.NewToolResultError("ingredients argument is required and must be a non-empty array of strings"), nil
	}

	recipes, err := h.recommender.RecommendByIngredients(ctx, ingredients)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get recommendations: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"recommendations": recipes})
}

// jsonResult marshals a response body into a text tool result
func jsonResult(body interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// extractStringArray pulls a string array argument out of the request
func extractStringArray(request mcp.CallToolRequest, key string) []string {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}

	raw, exists := args[key]
	if !exists {
		return nil
	}

	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if str, ok := item.(string); ok {
			result = append(result, str)
		}
	}
	return result
}
