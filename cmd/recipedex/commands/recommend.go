// ABOUTME: CLI command for preference-based recommendations
// ABOUTME: Uses the OpenAI recommender when configured, rule-based ranking otherwise
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewRecommendCmd creates the recommend command
func NewRecommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend up to 5 recipes to cook now",
		Long: `Recommend up to 5 recipes based on your saved preferences, favorites,
and the time of day.

When OPENAI_API_KEY is set the external recommender is consulted first;
on any failure the rule-based ranking answers instead.`,
		RunE: runRecommend,
	}

	return cmd
}

func runRecommend(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	recipes, err := eng.recommender.Recommend(cmd.Context())
	if err != nil {
		return fmt.Errorf("getting recommendations: %w", err)
	}

	if len(recipes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "The catalog is empty - add some recipes first.")
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
