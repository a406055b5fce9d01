// Package analytics: summary statistics and neighbor recommendations.
package analytics

import (
	"sort"

	"github.com/katalvlaran/propgraph/core"
	"github.com/katalvlaran/propgraph/traverse"
)

// Report aggregates read-only statistics over current graph state.
type Report struct {
	// Nodes and Edges are total entity counts.
	Nodes int
	Edges int

	// Components is the number of connected components.
	Components int

	// Density is 2E / n(n-1): the fraction of possible undirected node
	// pairs that are connected. Zero for graphs of at most one node.
	Density float64

	// AverageDegree is the mean number of distinct neighbors per node.
	AverageDegree float64

	// DegreeDistribution maps degree → number of nodes with that degree.
	DegreeDistribution map[int]int

	// Labels and EdgeTypes list the distinct values in use, sorted.
	Labels    []string
	EdgeTypes []string

	// LabelCounts and EdgeTypeCounts give per-value cardinalities.
	LabelCounts    map[string]int
	EdgeTypeCounts map[string]int
}

// Summary computes a Report over the graph's current storage and index
// state. Purely read-only; label and edge-type cardinalities come
// straight from the secondary indexes.
// Complexity: O(V + E) plus component discovery.
func Summary(g *core.Graph, opts ...traverse.Option) (Report, error) {
	if g == nil {
		return Report{}, ErrGraphNil
	}

	nodes := g.NodeIDs()
	n := len(nodes)

	distribution := make(map[int]int)
	totalDegree := 0
	for _, id := range nodes {
		deg, err := traverse.Degree(g, id, opts...)
		if err != nil {
			return Report{}, err
		}
		distribution[deg]++
		totalDegree += deg
	}

	components, err := ConnectedComponents(g, opts...)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Nodes:              n,
		Edges:              g.EdgeCount(),
		Components:         len(components),
		DegreeDistribution: distribution,
		Labels:             g.Labels(),
		EdgeTypes:          g.EdgeTypes(),
		LabelCounts:        g.LabelCounts(),
		EdgeTypeCounts:     g.EdgeTypeCounts(),
	}
	if n > 1 {
		r.Density = float64(2*r.Edges) / float64(n*(n-1))
	}
	if n > 0 {
		r.AverageDegree = float64(totalDegree) / float64(n)
	}

	return r, nil
}

// Recommend returns candidate connections for a node: every neighbor of a
// neighbor that is not already a direct neighbor and not the node itself,
// sorted. Use traverse.WithEdgeType to restrict the relationship kind
// considered, e.g. friend-of-friend suggestions over one edge type.
// A missing id yields an empty result.
// Complexity: O(Σ deg over the 2-hop neighborhood).
func Recommend(g *core.Graph, id string, opts ...traverse.Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	direct, err := traverse.Neighbors(g, id, opts...)
	if err != nil {
		return nil, err
	}
	directSet := make(map[string]struct{}, len(direct))
	for _, d := range direct {
		directSet[d] = struct{}{}
	}

	candidates := make(map[string]struct{})
	for _, d := range direct {
		second, err := traverse.Neighbors(g, d, opts...)
		if err != nil {
			return nil, err
		}
		for _, s := range second {
			if s == id {
				continue
			}
			if _, adjacent := directSet[s]; adjacent {
				continue
			}
			candidates[s] = struct{}{}
		}
	}

	out := make([]string, 0, len(candidates))
	for c := range candidates {
		out = append(out, c)
	}
	sort.Strings(out)

	return out, nil
}
