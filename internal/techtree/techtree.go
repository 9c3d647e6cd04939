// Package techtree models the research tree as a directed acyclic graph of
// technologies. It supports topological ordering, tiering, readiness and
// transitive prerequisite queries.
//
// Edges point from a technology to its prerequisites: if A requires B,
// there is an edge from A to B. Edges that would make the graph cyclic are
// not added; Build records them as anomalies instead.
package techtree

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// ErrCycle is returned when an edge would close a prerequisite cycle.
var ErrCycle = errors.New("cycle detected")

// ErrSelfEdge is returned when a technology would require itself.
var ErrSelfEdge = errors.New("self-referencing edge")

// ErrDuplicateEdge is returned when the same prerequisite is declared twice.
var ErrDuplicateEdge = errors.New("duplicate edge")

// ErrUnknownTechnology is returned when an edge names a value outside the
// Technology enumeration.
var ErrUnknownTechnology = errors.New("unknown technology")

// Anomaly is a declared prerequisite edge that was left out of the graph.
type Anomaly struct {
	From tech.Technology // the technology declaring the prerequisite
	To   tech.Technology // the declared prerequisite
	Err  error           // wraps one of the package sentinel errors
}

// Graph is the research tree over every member of tech.Set.
type Graph struct {
	// prereqs holds forward edges in insertion order.
	prereqs [][]tech.Technology
	// postreqs holds reverse edges in insertion order.
	postreqs  [][]tech.Technology
	anomalies []Anomaly
}

// New creates a graph containing every technology and no edges.
func New() *Graph {
	n := tech.Set.Len()
	return &Graph{
		prereqs:  make([][]tech.Technology, n),
		postreqs: make([][]tech.Technology, n),
	}
}

// Build creates a graph from a prerequisite function, visiting technologies
// and their prerequisites in declaration order. Edges AddEdge rejects are
// kept as anomalies.
func Build(prerequisites func(tech.Technology) []tech.Technology) *Graph {
	g := New()
	for _, t := range tech.All() {
		for _, p := range prerequisites(t) {
			if err := g.AddEdge(t, p); err != nil {
				g.anomalies = append(g.anomalies, Anomaly{From: t, To: p, Err: err})
			}
		}
	}
	return g
}

// AddEdge records that from requires to. It rejects unknown technologies,
// self-loops, repeats of an existing edge, and edges that would create a
// cycle.
func (g *Graph) AddEdge(from, to tech.Technology) error {
	if !tech.Set.Contains(from) {
		return fmt.Errorf("%w: %s", ErrUnknownTechnology, from)
	}
	if !tech.Set.Contains(to) {
		return fmt.Errorf("%w: %s", ErrUnknownTechnology, to)
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrSelfEdge, from)
	}
	if slices.Contains(g.prereqs[from], to) {
		return fmt.Errorf("%w: %s → %s", ErrDuplicateEdge, from, to)
	}
	// If to already (transitively) requires from, the new edge closes a loop.
	if g.hasPath(to, from) {
		return fmt.Errorf("%w: edge %s → %s would create a cycle", ErrCycle, from, to)
	}
	g.prereqs[from] = append(g.prereqs[from], to)
	g.postreqs[to] = append(g.postreqs[to], from)
	return nil
}

// Anomalies returns the edges Build could not add, in the order found.
func (g *Graph) Anomalies() []Anomaly {
	return slices.Clone(g.anomalies)
}

// Prerequisites returns the direct prerequisites of t held by the graph.
func (g *Graph) Prerequisites(t tech.Technology) []tech.Technology {
	if !tech.Set.Contains(t) {
		return nil
	}
	return slices.Clone(g.prereqs[t])
}

// Postrequisites returns the technologies that directly require t.
func (g *Graph) Postrequisites(t tech.Technology) []tech.Technology {
	if !tech.Set.Contains(t) {
		return nil
	}
	return slices.Clone(g.postreqs[t])
}

// Roots returns the technologies without prerequisites, in declaration order.
func (g *Graph) Roots() []tech.Technology {
	var roots []tech.Technology
	for _, t := range tech.All() {
		if len(g.prereqs[t]) == 0 {
			roots = append(roots, t)
		}
	}
	return roots
}

// TopologicalOrder returns every technology with prerequisites before the
// technologies that need them. Among technologies that become available at
// the same time, declaration order wins.
func (g *Graph) TopologicalOrder() []tech.Technology {
	inDegree := make([]int, len(g.prereqs))
	for t, ps := range g.prereqs {
		inDegree[t] = len(ps)
	}
	queue := g.Roots()
	order := make([]tech.Technology, 0, len(g.prereqs))
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		order = append(order, t)

		var freed []tech.Technology
		for _, dependent := range g.postreqs[t] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				freed = append(freed, dependent)
			}
		}
		slices.Sort(freed)
		queue = append(queue, freed...)
	}
	return order
}

// Ready returns the technologies not yet researched whose prerequisites are
// all in researched, in declaration order.
func (g *Graph) Ready(researched map[tech.Technology]bool) []tech.Technology {
	var ready []tech.Technology
	for _, t := range tech.All() {
		if researched[t] {
			continue
		}
		met := true
		for _, p := range g.prereqs[t] {
			if !researched[p] {
				met = false
				break
			}
		}
		if met {
			ready = append(ready, t)
		}
	}
	return ready
}

// Ancestors returns everything t transitively requires, in topological
// order. The result does not include t.
func (g *Graph) Ancestors(t tech.Technology) []tech.Technology {
	if !tech.Set.Contains(t) {
		return nil
	}
	visited := make([]bool, len(g.prereqs))
	g.walk(t, g.prereqs, visited)
	return g.inOrder(visited)
}

// Descendants returns everything that transitively requires t, in
// topological order. The result does not include t.
func (g *Graph) Descendants(t tech.Technology) []tech.Technology {
	if !tech.Set.Contains(t) {
		return nil
	}
	visited := make([]bool, len(g.prereqs))
	g.walk(t, g.postreqs, visited)
	return g.inOrder(visited)
}

// Reachable reports, for every technology, whether it can be researched
// starting from root alone.
func (g *Graph) Reachable(root tech.Technology) []bool {
	reached := make([]bool, len(g.prereqs))
	if !tech.Set.Contains(root) {
		return reached
	}
	reached[root] = true
	g.walk(root, g.postreqs, reached)
	// A technology is only reachable once all its prerequisites are.
	for _, t := range g.TopologicalOrder() {
		if t == root || !reached[t] {
			continue
		}
		for _, p := range g.prereqs[t] {
			if !reached[p] {
				reached[t] = false
				break
			}
		}
	}
	return reached
}

// hasPath reports whether src transitively requires dst.
func (g *Graph) hasPath(src, dst tech.Technology) bool {
	visited := make([]bool, len(g.prereqs))
	queue := []tech.Technology{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range g.prereqs[cur] {
			if p == dst {
				return true
			}
			if !visited[p] {
				visited[p] = true
				queue = append(queue, p)
			}
		}
	}
	return false
}

// walk marks everything reachable from t along edges.
func (g *Graph) walk(t tech.Technology, edges [][]tech.Technology, visited []bool) {
	for _, next := range edges[t] {
		if !visited[next] {
			visited[next] = true
			g.walk(next, edges, visited)
		}
	}
}

func (g *Graph) inOrder(marked []bool) []tech.Technology {
	var result []tech.Technology
	for _, t := range g.TopologicalOrder() {
		if marked[t] {
			result = append(result, t)
		}
	}
	return result
}
