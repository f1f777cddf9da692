// ABOUTME: CLI command to manage favorite recipes
// ABOUTME: Favorites feed the scorer's variety rule
package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewFavoriteCmd creates the favorite command
func NewFavoriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite",
		Short: "List favorite recipes",
		RunE:  runListFavorites,
	}

	add := &cobra.Command{
		Use:   "add <id>",
		Short: "Mark a recipe as a favorite",
		Args:  cobra.ExactArgs(1),
		RunE:  runAddFavorite,
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a recipe from favorites",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemoveFavorite,
	}

	cmd.AddCommand(add)
	cmd.AddCommand(remove)

	return cmd
}

func runListFavorites(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	recipes, err := eng.favorites.ListRecipes()
	if err != nil {
		return fmt.Errorf("listing favorites: %w", err)
	}

	if len(recipes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No favorites yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTIME")
	for _, r := range recipes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, truncate(r.Name, 32), r.Category, formatMinutes(r.Time))
	}
	return w.Flush()
}

func runAddFavorite(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("checking recipe: %w", err)
	}
	if recipe == nil {
		return fmt.Errorf("recipe %d not found", id)
	}

	if _, err := eng.favorites.Add(id); err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Favorited %q\n", recipe.Name)
	}
	return nil
}

func runRemoveFavorite(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("recipe id must be an integer: %q", args[0])
	}

	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	if err := eng.favorites.Remove(id); err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed recipe %d from favorites\n", id)
	}
	return nil
}
