// ABOUTME: CLI command to list catalog recipes
// ABOUTME: Supports the same filters as the HTTP listing endpoint
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/recipedex/internal/models"
)

var (
	listCategory   string
	listMaxTime    int
	listDifficulty string
	listSearch     string
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes in the catalog",
		Long: `List recipes in the catalog, newest first.

All filters are optional and combine with AND semantics.

Examples:
  recipedex list
  recipedex list --category Breakfast
  recipedex list --max-time 15 --difficulty beginner
  recipedex list --search pasta`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listCategory, "category", "", "Exact category to match")
	cmd.Flags().IntVar(&listMaxTime, "max-time", 0, "Maximum cooking time in minutes")
	cmd.Flags().StringVar(&listDifficulty, "difficulty", "", "Exact difficulty to match")
	cmd.Flags().StringVar(&listSearch, "search", "", "Search name, description, and tags")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	filter := models.RecipeFilter{
		Category:   listCategory,
		Difficulty: listDifficulty,
		Search:     listSearch,
	}
	if listMaxTime > 0 {
		filter.MaxTime = &listMaxTime
	}

	recipes, err := eng.recipes.List(filter)
	if err != nil {
		return fmt.Errorf("listing recipes: %w", err)
	}

	if len(recipes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recipes found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTIME\tDIFFICULTY")
	for _, r := range recipes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.ID, truncate(r.Name, 32), r.Category, formatMinutes(r.Time), r.Difficulty)
	}
	return w.Flush()
}
