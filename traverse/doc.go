// Package traverse provides read-only walks over a core.Graph:
// Neighbors, Degree, CommonNeighbors, breadth-first and depth-first
// search, and unweighted shortest path.
//
// All functions consume only the engine's exported read surface, so a
// traversal can run concurrently with other readers. Edges are treated
// as undirected adjacency regardless of their stored direction: the
// neighbor of a node across an edge is simply the other endpoint.
//
// Lookup-style contracts: an unknown node id yields an empty result, not
// an error: "nothing found" is distinguished from invalid instructions
// (negative depth limits), which fail loudly with ErrOptionViolation.
//
// Errors:
//
//	ErrGraphNil        - a nil graph pointer was passed.
//	ErrOptionViolation - an invalid Option was supplied.
//	ErrNoPath          - ShortestPath found no route (or an endpoint is missing).
package traverse
