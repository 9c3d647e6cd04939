package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gamma-delta/center-brain-archive/internal/archive"
	"github.com/gamma-delta/center-brain-archive/internal/dsp"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
	"github.com/gamma-delta/center-brain-archive/internal/techtree"
	"github.com/gamma-delta/center-brain-archive/internal/ui"
)

var researchCmd = &cobra.Command{
	Use:   "research [technology]",
	Short: "Show research tiers, or the path to one technology",
	Long: "Without arguments, list every technology by research tier. With a technology,\n" +
		"list everything that has to be researched first, in order, and what it unlocks.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, printer, err := loadConfig()
		if err != nil {
			return err
		}
		g := techtree.Build(dsp.Builtin{}.Prerequisites)
		for _, an := range g.Anomalies() {
			printer.Detail(fmt.Sprintf("ignoring prerequisite %s of %s: %v", an.To, an.From, an.Err))
		}
		if len(args) == 0 {
			fmt.Fprint(cmd.OutOrStdout(), ui.ResearchTiers(g.Tiers(), g.CriticalPath()))
			return nil
		}

		target, err := tech.Parse(args[0])
		if err != nil {
			return err
		}
		a, err := compileBuiltin()
		if err != nil {
			return err
		}
		return writeResearchPath(cmd.OutOrStdout(), g, a, target)
	},
}

func init() {
	rootCmd.AddCommand(researchCmd)
}

func writeResearchPath(w io.Writer, g *techtree.Graph, a *archive.Archive, target tech.Technology) error {
	plan := researchPlan(g, a, target)
	_, err := fmt.Fprint(w, ui.ResearchPath(plan))
	return err
}

func researchPlan(g *techtree.Graph, a *archive.Archive, target tech.Technology) ui.ResearchPlan {
	var unlocks []recipe.Recipe
	for r, def := range a.Recipes.All() {
		if def.UnlockedBy == target {
			unlocks = append(unlocks, r)
		}
	}
	return ui.ResearchPlan{
		Target:   target,
		Path:     g.Ancestors(target),
		Unlocks:  unlocks,
		Leads:    g.Postrequisites(target),
		Critical: g.LongestChainTo(target),
	}
}
