// Package integrity audits the curated tables. It runs the strict compiler
// and the research graph checks and reports everything it finds, instead of
// stopping at the first problem like the build does.
package integrity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gamma-delta/center-brain-archive/internal/archive"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
	"github.com/gamma-delta/center-brain-archive/internal/techtree"
)

// Severity ranks a finding.
type Severity int

// Severities, most serious first.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Category groups findings of the same kind.
type Category string

// Finding categories.
const (
	CategoryMissingRecipe     Category = "missing-recipe"
	CategoryRecipeMismatch    Category = "recipe-mismatch"
	CategoryUnknownReference  Category = "unknown-reference"
	CategoryInvalidQuantity   Category = "invalid-quantity"
	CategoryCrossLink         Category = "cross-link"
	CategorySelfPrerequisite  Category = "self-prerequisite"
	CategoryCycle             Category = "prerequisite-cycle"
	CategoryDuplicatePrereq   Category = "duplicate-prerequisite"
	CategoryUnreachableTech   Category = "unreachable-technology"
	CategoryUnreachableRecipe Category = "unreachable-recipe"
	CategoryUnproduced        Category = "unproduced-item"
	CategoryUnconsumed        Category = "unconsumed-item"
	CategoryZeroCountResult   Category = "zero-count-result"
)

// Finding is one audit observation.
type Finding struct {
	Severity Severity
	Category Category
	Subject  string
	Message  string
}

// Report collects the findings of one audit, most serious first.
type Report struct {
	Findings []Finding
}

// Valid reports whether the audit found no errors.
func (r *Report) Valid() bool {
	return r.Count(SeverityError) == 0
}

// Count returns the number of findings with severity s.
func (r *Report) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// Source is what Audit inspects; dsp.Builtin satisfies it.
type Source = archive.Source

// Audit compiles src and checks the result along with the research graph.
func Audit(src Source) *Report {
	r := &Report{}

	a, err := archive.Compile(src)
	for _, ie := range archive.IntegrityErrors(err) {
		r.add(SeverityError, compileCategory(ie), ie.Subject, errorMessage(ie))
	}
	if err != nil && len(archive.IntegrityErrors(err)) == 0 {
		r.add(SeverityError, CategoryCrossLink, "archive", err.Error())
	}

	g := techtree.Build(src.Prerequisites)
	r.graph(g)
	r.reachability(src, g)

	if a != nil {
		r.crossLinks(a)
	}

	slices.SortStableFunc(r.Findings, func(x, y Finding) int {
		return int(x.Severity) - int(y.Severity)
	})
	return r
}

func (r *Report) add(s Severity, c Category, subject, message string) {
	r.Findings = append(r.Findings, Finding{Severity: s, Category: c, Subject: subject, Message: message})
}

func compileCategory(ie *archive.IntegrityError) Category {
	switch {
	case errors.Is(ie, archive.ErrMissingRecipe):
		return CategoryMissingRecipe
	case errors.Is(ie, archive.ErrRecipeMismatch):
		return CategoryRecipeMismatch
	case errors.Is(ie, archive.ErrInvalidQuantity):
		return CategoryInvalidQuantity
	case errors.Is(ie, archive.ErrUnknownTechnology),
		errors.Is(ie, archive.ErrUnknownItem),
		errors.Is(ie, archive.ErrUnknownProducer):
		return CategoryUnknownReference
	default:
		return CategoryCrossLink
	}
}

func errorMessage(ie *archive.IntegrityError) string {
	if ie.Field != "" {
		return fmt.Sprintf("%s: %v", ie.Field, ie.Err)
	}
	return ie.Err.Error()
}

func (r *Report) graph(g *techtree.Graph) {
	for _, an := range g.Anomalies() {
		subject := "technology " + an.From.String()
		switch {
		case errors.Is(an.Err, techtree.ErrSelfEdge):
			r.add(SeverityWarning, CategorySelfPrerequisite, subject,
				"lists itself as a prerequisite; the edge is kept in the archive but ignored for research order")
		case errors.Is(an.Err, techtree.ErrCycle):
			r.add(SeverityWarning, CategoryCycle, subject,
				fmt.Sprintf("requiring %s closes a cycle", an.To))
		case errors.Is(an.Err, techtree.ErrDuplicateEdge):
			r.add(SeverityWarning, CategoryDuplicatePrereq, subject,
				fmt.Sprintf("lists %s more than once", an.To))
		}
		// Unknown technologies are already reported by the compiler.
	}
}

func (r *Report) reachability(src Source, g *techtree.Graph) {
	reached := g.Reachable(tech.Root)
	for _, t := range tech.All() {
		if !reached[t] {
			r.add(SeverityWarning, CategoryUnreachableTech, "technology "+t.String(),
				fmt.Sprintf("cannot be researched starting from %s", tech.Root))
		}
	}
	for _, rc := range recipe.All() {
		def, ok := src.Recipe(rc)
		if !ok || !tech.Set.Contains(def.UnlockedBy) || reached[def.UnlockedBy] {
			continue
		}
		r.add(SeverityWarning, CategoryUnreachableRecipe, "recipe "+rc.String(),
			fmt.Sprintf("is unlocked by unreachable technology %s", def.UnlockedBy))
	}
}

func (r *Report) crossLinks(a *archive.Archive) {
	for _, ie := range archive.IntegrityErrors(a.Verify()) {
		r.add(SeverityError, CategoryCrossLink, ie.Subject, errorMessage(ie))
	}
	for _, it := range item.All() {
		if len(a.ProductionMethods.Get(it)) == 0 {
			r.add(SeverityInfo, CategoryUnproduced, "item "+it.String(), "no recipe produces it")
		}
	}
	for _, it := range item.All() {
		if len(a.ConsumptionMethods.Get(it)) == 0 {
			r.add(SeverityInfo, CategoryUnconsumed, "item "+it.String(), "no recipe consumes it")
		}
	}
	for rc, def := range a.Recipes.All() {
		for i, s := range def.Results {
			if s.Count == 0 {
				r.add(SeverityInfo, CategoryZeroCountResult, "recipe "+rc.String(),
					fmt.Sprintf("results[%d]: %s has count 0", i, s.Item))
			}
		}
	}
}
