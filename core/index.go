// Package core: the four secondary indexes.
//
// graphIndex is derived state, never authoritative: at every point between
// operations each sub-index is exactly a pure function of current node and
// edge storage. It stores only ids (resolved through the engine's entity
// maps on lookup) and is owned by exactly one Graph instance, created
// empty at construction, wholesale-rebuilt on import, incrementally
// updated by every mutation while its Graph holds the write lock.
package core

// graphIndex bundles the four lookup structures.
type graphIndex struct {
	// byLabel maps label → set of node ids.
	byLabel map[string]map[string]struct{}

	// byProp maps property key → canonical value key → set of node ids.
	byProp map[string]map[string]map[string]struct{}

	// byType maps edge type → set of edge ids.
	byType map[string]map[string]struct{}

	// adjacency maps node id → set of incident edge ids (both endpoints).
	adjacency map[string]map[string]struct{}
}

// newGraphIndex allocates an empty index.
func newGraphIndex() *graphIndex {
	return &graphIndex{
		byLabel:   make(map[string]map[string]struct{}),
		byProp:    make(map[string]map[string]map[string]struct{}),
		byType:    make(map[string]map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}

// addNode files the node's labels and properties. The adjacency bucket is
// seeded so degree-zero nodes still appear in the adjacency view.
func (ix *graphIndex) addNode(n *Node) {
	for _, label := range n.Labels {
		ix.addLabel(label, n.ID)
	}
	for _, p := range n.Properties {
		ix.addProp(p.Key, p.Value, n.ID)
	}
	if _, ok := ix.adjacency[n.ID]; !ok {
		ix.adjacency[n.ID] = make(map[string]struct{})
	}
}

// removeNode unfiles the node's labels, properties, and adjacency bucket.
// Incident edges must already be gone (DeleteNode cascades first).
func (ix *graphIndex) removeNode(n *Node) {
	for _, label := range n.Labels {
		ix.removeLabel(label, n.ID)
	}
	for _, p := range n.Properties {
		ix.removeProp(p.Key, p.Value, n.ID)
	}
	delete(ix.adjacency, n.ID)
}

// addEdge files the edge under its type and both endpoints' adjacency.
// A self-loop occupies a single adjacency bucket once.
func (ix *graphIndex) addEdge(e *Edge) {
	bucket, ok := ix.byType[e.Type]
	if !ok {
		bucket = make(map[string]struct{})
		ix.byType[e.Type] = bucket
	}
	bucket[e.ID] = struct{}{}

	ix.addAdjacent(e.From, e.ID)
	if e.To != e.From {
		ix.addAdjacent(e.To, e.ID)
	}
}

// removeEdge unfiles the edge from its type bucket and both adjacency sets.
func (ix *graphIndex) removeEdge(e *Edge) {
	if bucket, ok := ix.byType[e.Type]; ok {
		delete(bucket, e.ID)
		if len(bucket) == 0 {
			delete(ix.byType, e.Type)
		}
	}
	ix.removeAdjacent(e.From, e.ID)
	if e.To != e.From {
		ix.removeAdjacent(e.To, e.ID)
	}
}

// addLabel files nodeID under label.
func (ix *graphIndex) addLabel(label, nodeID string) {
	bucket, ok := ix.byLabel[label]
	if !ok {
		bucket = make(map[string]struct{})
		ix.byLabel[label] = bucket
	}
	bucket[nodeID] = struct{}{}
}

// removeLabel unfiles nodeID from label, pruning the empty bucket.
func (ix *graphIndex) removeLabel(label, nodeID string) {
	if bucket, ok := ix.byLabel[label]; ok {
		delete(bucket, nodeID)
		if len(bucket) == 0 {
			delete(ix.byLabel, label)
		}
	}
}

// addProp files nodeID under (key, canonical value key).
func (ix *graphIndex) addProp(key string, val Value, nodeID string) {
	values, ok := ix.byProp[key]
	if !ok {
		values = make(map[string]map[string]struct{})
		ix.byProp[key] = values
	}
	vk := val.key()
	bucket, ok := values[vk]
	if !ok {
		bucket = make(map[string]struct{})
		values[vk] = bucket
	}
	bucket[nodeID] = struct{}{}
}

// removeProp unfiles nodeID from (key, value), pruning empty buckets.
func (ix *graphIndex) removeProp(key string, val Value, nodeID string) {
	values, ok := ix.byProp[key]
	if !ok {
		return
	}
	vk := val.key()
	if bucket, ok := values[vk]; ok {
		delete(bucket, nodeID)
		if len(bucket) == 0 {
			delete(values, vk)
		}
	}
	if len(values) == 0 {
		delete(ix.byProp, key)
	}
}

// addAdjacent files edgeID into nodeID's incident set.
func (ix *graphIndex) addAdjacent(nodeID, edgeID string) {
	bucket, ok := ix.adjacency[nodeID]
	if !ok {
		bucket = make(map[string]struct{})
		ix.adjacency[nodeID] = bucket
	}
	bucket[edgeID] = struct{}{}
}

// removeAdjacent unfiles edgeID from nodeID's incident set. The bucket is
// kept (possibly empty) while the node itself exists; removeNode drops it.
func (ix *graphIndex) removeAdjacent(nodeID, edgeID string) {
	if bucket, ok := ix.adjacency[nodeID]; ok {
		delete(bucket, edgeID)
	}
}

// nodesByLabel returns the id set filed under label (nil if unknown).
func (ix *graphIndex) nodesByLabel(label string) map[string]struct{} {
	return ix.byLabel[label]
}

// nodesByProp returns the id set filed under (key, value) (nil if unknown).
func (ix *graphIndex) nodesByProp(key string, val Value) map[string]struct{} {
	values, ok := ix.byProp[key]
	if !ok {
		return nil
	}

	return values[val.key()]
}
