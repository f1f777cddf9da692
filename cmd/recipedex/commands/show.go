// ABOUTME: CLI command to show a single recipe in full
// ABOUTME: Prints ingredients and numbered steps
package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe in full",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("recipe id must be an integer: %q", args[0])
	}

	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	recipe, err := eng.recipes.Get(id)
	if err != nil {
		return fmt.Errorf("getting recipe: %w", err)
	}
	if recipe == nil {
		return fmt.Errorf("recipe %d not found", id)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (#%d)\n", recipe.Name, recipe.ID)
	if recipe.Description != "" {
		fmt.Fprintf(out, "%s\n", recipe.Description)
	}
	fmt.Fprintf(out, "\nCategory: %s  Time: %s  Difficulty: %s  Servings: %s\n",
		recipe.Category, formatMinutes(recipe.Time), recipe.Difficulty, formatServings(recipe.Servings))
	fmt.Fprintf(out, "Tags: %s\n", joinOrDash(recipe.Tags))

	fmt.Fprintln(out, "\nIngredients:")
	for _, ing := range recipe.Ingredients {
		fmt.Fprintf(out, "  - %s\n", ing)
	}

	fmt.Fprintln(out, "\nSteps:")
	for i, step := range recipe.Steps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, step)
	}

	return nil
}

// formatServings renders an optional serving count
func formatServings(servings *int) string {
	if servings == nil {
		return "-"
	}
	return strconv.Itoa(*servings)
}
