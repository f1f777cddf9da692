// ABOUTME: MCP tool definitions and registration for the recipe service
// ABOUTME: Exposes catalog listing and both recommendation paths over stdio
package mcp

import (
	"github.com/harper/recipedex/internal/core"
	"github.com/harper/recipedex/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, recipes *sqlite.RecipeStore, recommender *core.Recommender) *Handlers {
	handlers := &Handlers{
		recipes:     recipes,
		recommender: recommender,
	}

	// 1. list_recipes - List catalog recipes with optional filters
	server.AddTool(mcp.Tool{
		Name:        "list_recipes",
		Description: "List recipes from the catalog, optionally narrowed by category, maximum cooking time, difficulty, or a search term.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Exact category to match (e.g., Breakfast, Lunch, Dinner)",
				},
				"max_time": map[string]interface{}{
					"type":        "number",
					"description": "Maximum cooking time in minutes",
				},
				"difficulty": map[string]interface{}{
					"type":        "string",
					"description": "Exact difficulty to match (beginner, intermediate, advanced)",
				},
				"search": map[string]interface{}{
					"type":        "string",
					"description": "Case-insensitive search over name, description, and tags",
				},
			},
		},
	}, handlers.ListRecipes)

	// 2. get_recipe - Fetch a single recipe by id
	server.AddTool(mcp.Tool{
		Name:        "get_recipe",
		Description: "Get the full details of a single recipe by its id, including ingredients and steps.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "number",
					"description": "Recipe id",
				},
			},
			Required: []string{"id"},
		},
	}, handlers.GetRecipe)

	// 3. recommend_recipes - Preference-based recommendations
	server.AddTool(mcp.Tool{
		Name:        "recommend_recipes",
		Description: "Get up to 5 recommended recipes based on the saved user preferences, favorites, and time of day.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.RecommendRecipes)

	// 4. recommend_by_ingredients - Pantry-based recommendations
	server.AddTool(mcp.Tool{
		Name:        "recommend_by_ingredients",
		Description: "Get up to 5 recipes whose ingredients are best covered by a list of available ingredients.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"ingredients": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Ingredients available to cook with (e.g., 'eggs', 'rice')",
				},
			},
			Required: []string{"ingredients"},
		},
	}, handlers.RecommendByIngredients)

	return handlers
}
