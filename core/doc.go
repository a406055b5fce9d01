// Package core defines the central Graph engine together with its Node,
// Edge, and Property types, and keeps four secondary indexes (by label,
// by property value, by edge type, by node adjacency) in lock-step with
// entity storage.
//
// Every mutating operation, including the cascading delete of a node and
// its incident edges, runs inside one critical section, so concurrent
// readers never observe a dangling edge or a stale index entry. Read-only
// operations share a single RWMutex and always return deep copies:
// indexes store only ids, resolved through the engine-owned entity maps
// on lookup, which keeps ownership in one place.
//
// Errors:
//
//	ErrNodeNotFound     - referenced node id does not exist.
//	ErrEdgeNotFound     - referenced edge id does not exist.
//	ErrEmptyLabel       - a label is the empty string.
//	ErrEmptyPropertyKey - a property key is the empty string.
//	ErrEmptyEdgeType    - an edge type is the empty string.
//	ErrEmptyID          - an imported entity carries an empty id.
//	ErrNilDocument      - Import received a nil document.
//
// Lookup operations (FindNodes, FindEdges) never fail on unknown input;
// they return empty results. Malformed input fails loudly with one of the
// sentinels above.
package core
