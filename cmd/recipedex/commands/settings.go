// ABOUTME: CLI command to view and update user preferences
// ABOUTME: Saves update the singleton record; reads show the latest one
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/recipedex/internal/models"
)

var (
	settingsDiet       []string
	settingsCuisines   []string
	settingsMaxTime    int
	settingsDifficulty string
	settingsTheme      string
)

// NewSettingsCmd creates the settings command
func NewSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the current preferences",
		RunE:  runShowSettings,
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Update preferences",
		Long: `Update preferences. Unset flags clear their fields; the saved record
always reflects exactly the flags given.

Examples:
  recipedex settings set --diet vegetarian --max-time 30
  recipedex settings set --difficulty beginner --cuisine italian --cuisine indian`,
		RunE: runSetSettings,
	}

	set.Flags().StringSliceVar(&settingsDiet, "diet", nil, "Dietary restrictions (repeatable)")
	set.Flags().StringSliceVar(&settingsCuisines, "cuisine", nil, "Preferred cuisines (repeatable)")
	set.Flags().IntVar(&settingsMaxTime, "max-time", 0, "Maximum cooking time in minutes")
	set.Flags().StringVar(&settingsDifficulty, "difficulty", "", "Preferred difficulty")
	set.Flags().StringVar(&settingsTheme, "theme", "", "UI theme")

	cmd.AddCommand(set)

	return cmd
}

func runShowSettings(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	prefs, err := eng.preferences.Current()
	if err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Dietary restrictions: %s\n", joinOrDash(prefs.DietaryRestrictions))
	fmt.Fprintf(out, "Cuisine types:        %s\n", joinOrDash(prefs.CuisineTypes))
	fmt.Fprintf(out, "Max cooking time:     %s\n", formatMinutes(prefs.MaxCookingTime))
	if prefs.DifficultyPreference != "" {
		fmt.Fprintf(out, "Difficulty:           %s\n", prefs.DifficultyPreference)
	} else {
		fmt.Fprintf(out, "Difficulty:           -\n")
	}
	fmt.Fprintf(out, "Theme:                %s\n", prefs.Theme)

	return nil
}

func runSetSettings(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	prefs := &models.UserPreferences{
		DietaryRestrictions:  settingsDiet,
		CuisineTypes:         settingsCuisines,
		DifficultyPreference: settingsDifficulty,
		Theme:                settingsTheme,
	}
	if settingsMaxTime > 0 {
		prefs.MaxCookingTime = &settingsMaxTime
	}

	if _, err := eng.preferences.Save(prefs); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Preferences saved.")
	}
	return nil
}
