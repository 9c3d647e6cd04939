package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/gamma-delta/center-brain-archive/internal/archive"
	"github.com/gamma-delta/center-brain-archive/internal/dsp"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // Cyan: headers
	colorAccent     = lipgloss.Color("#FFD700") // Gold: research
	colorSuccess    = lipgloss.Color("#00E676") // Green: results
	colorMuted      = lipgloss.Color("#636363") // Gray: borders
	colorMutedLight = lipgloss.Color("#8C8C8C") // Lighter gray: footers
	colorWhite      = lipgloss.Color("#EEEEEE") // Off-white: body text
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginBottom(1)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleCardHeader = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	styleIngredient = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleResult = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleProcess = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Italic(true)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// RecipeCard draws one recipe: ingredients, the crafting step, results and
// the technology that unlocks it.
func RecipeCard(def dsp.RecipeDefinition) string {
	var lines []string
	lines = append(lines, styleCardHeader.Render(def.Recipe.String()))
	for _, s := range def.Ingredients {
		lines = append(lines, styleIngredient.Render(stack(s)))
	}

	crafting := "Not Handcraftable"
	if def.Handcraftable {
		crafting = "Handcraftable"
	}
	lines = append(lines, styleProcess.Render(fmt.Sprintf("↓ %s seconds, %s, %s",
		humanize.Ftoa(def.Time), def.MadeIn, crafting)))

	for _, s := range def.Results {
		lines = append(lines, styleResult.Render(stack(s)))
	}
	lines = append(lines, styleFooter.Render("Unlocked by "+def.UnlockedBy.String()))
	return styleCard.Render(strings.Join(lines, "\n"))
}

func stack(s dsp.ItemStack) string {
	return fmt.Sprintf("%sx %s", humanize.Ftoa(s.Count), s.Item)
}

// ItemView lists the recipes that produce it, or with consume set, the
// recipes that use it up.
func ItemView(a *archive.Archive, it item.Item, consume bool) string {
	verb, methods := "produce", a.ProductionMethods.Get(it)
	if consume {
		verb, methods = "consume", a.ConsumptionMethods.Get(it)
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Ways to %s %s", verb, it)))
	b.WriteString("\n")
	if len(methods) == 0 {
		b.WriteString(styleMuted.Render(fmt.Sprintf("No recipe can %s %s.", verb, it)))
		b.WriteString("\n")
		return b.String()
	}
	for _, r := range methods {
		b.WriteString(RecipeCard(a.Recipes.Get(r)))
		b.WriteString("\n")
	}
	return b.String()
}

// TechCard draws a technology with its edges and the recipes it unlocks.
func TechCard(a *archive.Archive, t tech.Technology) string {
	entry := a.TechTree.Get(t)

	var unlocks []string
	for r, def := range a.Recipes.All() {
		if def.UnlockedBy == t {
			unlocks = append(unlocks, r.String())
		}
	}

	lines := []string{
		styleCardHeader.Render(t.String()),
		styleMuted.Render("requires: ") + techList(entry.Prereqs),
		styleMuted.Render("leads to: ") + techList(entry.Postreqs),
		styleFooter.Render("unlocks: ") + nameList(unlocks),
	}
	return styleCard.Render(strings.Join(lines, "\n"))
}

func techList(ts []tech.Technology) string {
	return nameList(names(ts))
}

func recipeList(rs []recipe.Recipe) string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.String()
	}
	return nameList(names)
}

func nameList(names []string) string {
	if len(names) == 0 {
		return styleMuted.Render("nothing")
	}
	return strings.Join(names, ", ")
}
