package techtree

import "github.com/gamma-delta/center-brain-archive/internal/dsp/tech"

// Tiers groups technologies by the length of their longest prerequisite
// chain: tier 0 holds the roots, tier n the technologies whose deepest
// prerequisite is in tier n-1. Each tier is in declaration order.
func (g *Graph) Tiers() [][]tech.Technology {
	depth := g.depths()
	var tiers [][]tech.Technology
	for _, t := range tech.All() {
		d := depth[t]
		for len(tiers) <= d {
			tiers = append(tiers, nil)
		}
		tiers[d] = append(tiers[d], t)
	}
	return tiers
}

// Depth returns the tier of t, or -1 when t is not a technology.
func (g *Graph) Depth(t tech.Technology) int {
	if !tech.Set.Contains(t) {
		return -1
	}
	return g.depths()[t]
}

// LongestChainTo returns the longest prerequisite chain ending at t, root
// first and t last. When several chains tie, the one through the earliest
// declared prerequisite wins.
func (g *Graph) LongestChainTo(t tech.Technology) []tech.Technology {
	if !tech.Set.Contains(t) {
		return nil
	}
	depth := g.depths()
	var chain []tech.Technology
	for cur := t; ; {
		chain = append(chain, cur)
		ps := g.prereqs[cur]
		if len(ps) == 0 {
			break
		}
		next := ps[0]
		for _, p := range ps[1:] {
			if depth[p] > depth[next] || (depth[p] == depth[next] && p < next) {
				next = p
			}
		}
		cur = next
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// CriticalPath returns the longest prerequisite chain in the whole tree.
// It determines how many research steps are unavoidable when everything
// else can proceed in parallel.
func (g *Graph) CriticalPath() []tech.Technology {
	depth := g.depths()
	end := tech.Root
	for _, t := range tech.All() {
		if depth[t] > depth[end] {
			end = t
		}
	}
	return g.LongestChainTo(end)
}

// depths computes the longest distance from a root for every technology
// using dynamic programming over the topological order.
func (g *Graph) depths() []int {
	depth := make([]int, len(g.prereqs))
	for _, t := range g.TopologicalOrder() {
		for _, p := range g.prereqs[t] {
			if depth[p]+1 > depth[t] {
				depth[t] = depth[p] + 1
			}
		}
	}
	return depth
}
