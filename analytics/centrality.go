// Package analytics: brute-force betweenness centrality.
package analytics

import (
	"github.com/katalvlaran/propgraph/core"
	"github.com/katalvlaran/propgraph/traverse"
)

// BetweennessCentrality scores every node in [0,1] by the fraction of
// all-pairs shortest paths passing through it: for each unordered pair of
// distinct nodes, ALL minimum-hop paths are enumerated and every strictly
// intermediate node on each path is credited 1/(number of shortest paths
// for that pair). Scores are normalized by (n-1)(n-2) when n > 2.
//
// This is the brute-force enumeration, cubic-class in
// graph size, not Brandes' algorithm; it is meant for small graphs.
// Use traverse.WithContext to make long runs cancellable.
func BetweennessCentrality(g *core.Graph, opts ...traverse.Option) (map[string]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := applyOptions(opts)

	nodes := g.NodeIDs()
	scores := make(map[string]float64, len(nodes))
	for _, id := range nodes {
		scores[id] = 0
	}

	for i, s := range nodes {
		for _, t := range nodes[i+1:] {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}

			paths, err := allShortestPaths(g, s, t, opts)
			if err != nil {
				return nil, err
			}
			if len(paths) == 0 {
				continue
			}
			credit := 1 / float64(len(paths))
			for _, path := range paths {
				for _, via := range path[1 : len(path)-1] {
					scores[via] += credit
				}
			}
		}
	}

	if n := len(nodes); n > 2 {
		norm := float64((n - 1) * (n - 2))
		for id := range scores {
			scores[id] /= norm
		}
	}

	return scores, nil
}

// allShortestPaths enumerates every minimum-hop path from s to t:
// a level-aware BFS records, for each discovered node, all predecessors
// on some shortest path; the paths are then reconstructed backwards from
// t. An unreachable t yields no paths.
// Complexity: O(V + E) for the BFS plus the size of the output.
func allShortestPaths(g *core.Graph, s, t string, opts []traverse.Option) ([][]string, error) {
	if s == t {
		return [][]string{{s}}, nil
	}

	dist := map[string]int{s: 0}
	parents := make(map[string][]string)
	queue := []string{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if found, ok := dist[t]; ok && dist[cur] >= found {
			break // deeper levels cannot start new shortest paths
		}
		neighbors, err := traverse.Neighbors(g, cur, opts...)
		if err != nil {
			return nil, err
		}
		for _, nbr := range neighbors {
			d, seen := dist[nbr]
			switch {
			case !seen:
				dist[nbr] = dist[cur] + 1
				parents[nbr] = []string{cur}
				queue = append(queue, nbr)
			case d == dist[cur]+1:
				parents[nbr] = append(parents[nbr], cur)
			}
		}
	}

	if _, reached := dist[t]; !reached {
		return nil, nil
	}

	return assemble(parents, s, t), nil
}

// assemble expands parent links into explicit s..t paths.
func assemble(parents map[string][]string, s, t string) [][]string {
	if t == s {
		return [][]string{{s}}
	}
	var out [][]string
	for _, p := range parents[t] {
		for _, prefix := range assemble(parents, s, p) {
			path := make([]string, 0, len(prefix)+1)
			path = append(path, prefix...)
			path = append(path, t)
			out = append(out, path)
		}
	}

	return out
}

// applyOptions folds traverse options for analytics' own cancellation
// checks; the underlying walks re-apply and validate them independently.
func applyOptions(opts []traverse.Option) traverse.Options {
	o := traverse.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
