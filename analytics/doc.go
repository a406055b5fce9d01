// Package analytics provides aggregate algorithms over a core.Graph,
// composed from the traverse package's primitives: connected components,
// betweenness centrality, a simplified community grouping, neighbor
// recommendations, and summary statistics.
//
// Everything here is read-only and works on undirected adjacency, like
// the traversals it builds on.
//
// Performance ceiling: BetweennessCentrality enumerates all
// minimum-hop paths per node pair (cubic-class in graph size) rather than
// using Brandes' algorithm. The engine targets small analytical graphs;
// pass a cancellable context via traverse.WithContext for anything big.
package analytics
