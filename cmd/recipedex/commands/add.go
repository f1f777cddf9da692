// ABOUTME: CLI command to add a recipe from a JSON file
// ABOUTME: The store assigns the id; defaults mirror the HTTP create path
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/recipedex/internal/models"
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <recipe.json>",
		Short: "Add a recipe to the catalog from a JSON file",
		Long: `Add a recipe to the catalog from a JSON file.

The file uses the same shape as the HTTP API:

  {
    "name": "Cheese Toastie",
    "category": "Snack",
    "time": 10,
    "difficulty": "beginner",
    "servings": 1,
    "ingredients": ["bread", "cheese", "butter"],
    "steps": ["Butter the bread.", "Grill until golden."],
    "tags": ["quick", "comfort-food"],
    "description": "A quick snack."
  }`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading recipe file: %w", err)
	}

	var recipe models.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return fmt.Errorf("parsing recipe file: %w", err)
	}
	if recipe.Name == "" {
		return fmt.Errorf("recipe name is required")
	}

	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	id, err := eng.recipes.Insert(&recipe)
	if err != nil {
		return fmt.Errorf("adding recipe: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Added %q as recipe #%d\n", recipe.Name, id)
	}
	return nil
}
