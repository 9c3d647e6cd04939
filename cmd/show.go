package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
	"github.com/gamma-delta/center-brain-archive/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show an item, recipe or technology from the archive",
}

var showItemCmd = &cobra.Command{
	Use:   "item <name>",
	Short: "Show the recipes that produce an item (or consume it, with --consume)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		it, err := item.Parse(args[0])
		if err != nil {
			return err
		}
		consume, _ := cmd.Flags().GetBool("consume")
		a, err := compileBuiltin()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.ItemView(a, it, consume))
		return nil
	},
}

var showRecipeCmd = &cobra.Command{
	Use:   "recipe <name>",
	Short: "Show a recipe card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := recipe.Parse(args[0])
		if err != nil {
			return err
		}
		a, err := compileBuiltin()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RecipeCard(a.Recipes.Get(r)))
		return nil
	},
}

var showTechCmd = &cobra.Command{
	Use:   "tech <name>",
	Short: "Show a technology with its prerequisites and unlocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := tech.Parse(args[0])
		if err != nil {
			return err
		}
		a, err := compileBuiltin()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.TechCard(a, t))
		return nil
	},
}

func init() {
	showItemCmd.Flags().Bool("consume", false, "list the recipes that consume the item instead")
	showCmd.AddCommand(showItemCmd, showRecipeCmd, showTechCmd)
	rootCmd.AddCommand(showCmd)
}
