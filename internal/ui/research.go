package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

var styleTier = lipgloss.NewStyle().
	Foreground(colorAccent).
	Bold(true)

// ResearchTiers lists technologies grouped by how many research steps they
// sit from a root, followed by the longest chain in the tree.
func ResearchTiers(tiers [][]tech.Technology, critical []tech.Technology) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Research tiers"))
	b.WriteString("\n")
	for i, tier := range tiers {
		fmt.Fprintf(&b, "%s %s\n", styleTier.Render(fmt.Sprintf("tier %2d", i)), techList(tier))
	}
	fmt.Fprintf(&b, "\n%s %s\n", styleMuted.Render("critical:"), strings.Join(names(critical), " → "))
	return b.String()
}

// ResearchPlan is everything the research command shows for one target.
type ResearchPlan struct {
	Target   tech.Technology
	Path     []tech.Technology // prerequisite closure in research order
	Unlocks  []recipe.Recipe
	Leads    []tech.Technology // direct postrequisites
	Critical []tech.Technology // longest prerequisite chain ending at Target
}

// ResearchPath renders a plan as a numbered research order followed by what
// the target opens up.
func ResearchPath(plan ResearchPlan) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Researching " + plan.Target.String()))
	b.WriteString("\n")

	if len(plan.Path) == 0 {
		b.WriteString(styleMuted.Render("No prerequisites."))
		b.WriteString("\n")
	}
	for i, t := range plan.Path {
		fmt.Fprintf(&b, "%3d. %s\n", i+1, t)
	}
	fmt.Fprintf(&b, "%3d. %s\n\n", len(plan.Path)+1, styleCardHeader.Render(plan.Target.String()))

	fmt.Fprintf(&b, "%s %s\n", styleMuted.Render("unlocks: "), recipeList(plan.Unlocks))
	fmt.Fprintf(&b, "%s %s\n", styleMuted.Render("leads to:"), techList(plan.Leads))
	fmt.Fprintf(&b, "%s %s\n", styleMuted.Render("critical:"), strings.Join(names(plan.Critical), " → "))
	return b.String()
}

func names(ts []tech.Technology) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}
