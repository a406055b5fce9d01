// Package propgraph is an in-memory labeled property graph engine:
// nodes with labels and typed properties, directed typed edges, four
// always-consistent secondary indexes, and a family of traversal and
// analytics algorithms on top.
//
// 🚀 What is propgraph?
//
//	A single-process, thread-safe graph data store that brings together:
//		• Entities: nodes & edges carrying tagged-variant properties
//		• Indexes: by label, by property value, by edge type, by adjacency
//		• CRUD: atomic mutations keeping storage and indexes in lock-step
//		• Traversals: neighbors, BFS, DFS, unweighted shortest path
//		• Analytics: connected components, betweenness centrality,
//		  community grouping, density & degree statistics
//		• Interchange: JSON export/import with full index rebuild
//
// ✨ Why choose propgraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every mutation is one critical section,
//     so no reader ever observes a dangling edge or a stale index entry
//   - Observable – opt-in structured logging and a Prometheus collector
//   - Extensible – functional options on every surface
//
// Everything is organized under three subpackages:
//
//	core/      Node, Edge, Property types, the engine and its indexes
//	traverse/  read-only walks: Neighbors, Degree, BFS, DFS, ShortestPath
//	analytics/ components, centrality, communities, summary statistics
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four nodes, four LINK edges; ShortestPath(A, D) is A→B→D or A→C→D.
//
// Persistence, replication and query languages are out of scope: the
// engine is a library, called directly by whatever surface embeds it.
//
//	go get github.com/katalvlaran/propgraph
package propgraph
