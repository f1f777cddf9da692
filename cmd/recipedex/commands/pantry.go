// ABOUTME: CLI command for ingredient-based recommendations
// ABOUTME: Ranks recipes by how well the given ingredients cover them
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewPantryCmd creates the pantry command
func NewPantryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pantry <ingredient>...",
		Short: "Recommend recipes for the ingredients you have",
		Long: `Recommend up to 5 recipes whose ingredient lists are best covered by
what you have on hand. Matching is loose: "egg" matches "2 eggs".

Examples:
  recipedex pantry eggs bread butter
  recipedex pantry "soy sauce" rice egg`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPantry,
	}

	return cmd
}

func runPantry(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	recipes, err := eng.recommender.RecommendByIngredients(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("matching ingredients: %w", err)
	}

	if len(recipes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recipes matched those ingredients well enough.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTIME\tINGREDIENTS")
	for _, r := range recipes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.ID, truncate(r.Name, 32), r.Category, formatMinutes(r.Time), truncate(joinOrDash(r.Ingredients), 48))
	}
	return w.Flush()
}
