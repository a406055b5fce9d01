// Package core_test verifies the Graph engine's CRUD and index contracts.
package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/propgraph/core"
)

// TestCreateAndGetNode verifies creation, deep-copy reads, and NotFound.
func TestCreateAndGetNode(t *testing.T) {
	g := core.NewGraph()

	id, err := g.CreateNode([]string{"Person", "Student"}, map[string]any{
		"name": "alice",
		"age":  30,
	})
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	if id == "" {
		t.Fatal("CreateNode returned empty id")
	}

	n, err := g.Node(id)
	if err != nil {
		t.Fatalf("Node(%q): %v", id, err)
	}
	if !n.HasLabel("Person") || !n.HasLabel("Student") {
		t.Errorf("labels = %v; want Person+Student", n.Labels)
	}
	if v, ok := n.Property("age"); !ok || v.Kind() != core.KindInt {
		t.Errorf("age property kind = %v; want integer", v.Kind())
	}

	// Mutating the returned copy must not leak into storage.
	n.Labels[0] = "Tampered"
	n2, _ := g.Node(id)
	if n2.Labels[0] == "Tampered" {
		t.Error("Node returned an aliased copy")
	}

	if _, err = g.Node("missing"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("missing node: want ErrNodeNotFound, got %v", err)
	}
}

// TestCreateNodeValidation verifies InvalidArgument sentinels.
func TestCreateNodeValidation(t *testing.T) {
	g := core.NewGraph()

	if _, err := g.CreateNode([]string{""}, nil); !errors.Is(err, core.ErrEmptyLabel) {
		t.Errorf("empty label: want ErrEmptyLabel, got %v", err)
	}
	if _, err := g.CreateNode(nil, map[string]any{"": 1}); !errors.Is(err, core.ErrEmptyPropertyKey) {
		t.Errorf("empty key: want ErrEmptyPropertyKey, got %v", err)
	}
	// Empty label SET is allowed.
	if _, err := g.CreateNode(nil, nil); err != nil {
		t.Errorf("label-less node: unexpected error %v", err)
	}
}

// TestFindNodes verifies index-backed lookup and filter intersection.
func TestFindNodes(t *testing.T) {
	g := core.NewGraph()
	alice, _ := g.CreateNode([]string{"Person"}, map[string]any{"city": "Riga", "age": 30})
	bob, _ := g.CreateNode([]string{"Person"}, map[string]any{"city": "Riga", "age": 40})
	g.CreateNode([]string{"Company"}, map[string]any{"city": "Riga"})

	// Label only.
	people := g.FindNodes("Person", nil)
	if len(people) != 2 {
		t.Fatalf("FindNodes(Person) = %d nodes; want 2", len(people))
	}

	// Label ∩ property.
	got := g.FindNodes("Person", map[string]any{"city": "Riga", "age": 30})
	if len(got) != 1 || got[0].ID != alice {
		t.Errorf("intersection = %v; want exactly %s", got, alice)
	}

	// Property only (no label) spans labels.
	riga := g.FindNodes("", map[string]any{"city": "Riga"})
	if len(riga) != 3 {
		t.Errorf("FindNodes(city=Riga) = %d nodes; want 3", len(riga))
	}

	// Two property buckets of different sizes, no label: the narrow
	// age bucket intersected with the wide city bucket.
	got = g.FindNodes("", map[string]any{"city": "Riga", "age": 30})
	if len(got) != 1 || got[0].ID != alice {
		t.Errorf("filter-only intersection = %v; want exactly %s", got, alice)
	}

	// No criteria at all: every node matches.
	if got := g.FindNodes("", nil); len(got) != 3 {
		t.Errorf("FindNodes(no criteria) = %d nodes; want 3", len(got))
	}

	// Unknown label/value: empty result, never an error.
	if got := g.FindNodes("Ghost", nil); len(got) != 0 {
		t.Errorf("unknown label: got %v; want empty", got)
	}
	if got := g.FindNodes("Person", map[string]any{"age": 99}); len(got) != 0 {
		t.Errorf("unknown value: got %v; want empty", got)
	}

	// Int and float of equal magnitude are distinct index values.
	if got := g.FindNodes("", map[string]any{"age": 40.0}); len(got) != 0 {
		t.Errorf("float 40.0 matched int 40: %v (bob=%s)", got, bob)
	}
}

// TestUpdateNodeReplacesLabels verifies the replace-not-merge contract
// and its index consequences.
func TestUpdateNodeReplacesLabels(t *testing.T) {
	g := core.NewGraph()
	id, _ := g.CreateNode([]string{"Person", "Student"}, nil)

	if err := g.UpdateNode(id, []string{"Alumni"}, nil); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}

	n, _ := g.Node(id)
	if len(n.Labels) != 1 || n.Labels[0] != "Alumni" {
		t.Errorf("labels = %v; want [Alumni]", n.Labels)
	}
	if got := g.FindNodes("Student", nil); len(got) != 0 {
		t.Errorf("stale label index entry: %v", got)
	}
	if got := g.FindNodes("Alumni", nil); len(got) != 1 {
		t.Errorf("missing label index entry for Alumni")
	}

	// nil labels leaves the label set untouched.
	if err := g.UpdateNode(id, nil, map[string]any{"year": 2024}); err != nil {
		t.Fatalf("UpdateNode(props): %v", err)
	}
	n, _ = g.Node(id)
	if len(n.Labels) != 1 || n.Labels[0] != "Alumni" {
		t.Errorf("nil labels mutated label set: %v", n.Labels)
	}

	if err := g.UpdateNode("missing", nil, nil); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("missing node: want ErrNodeNotFound, got %v", err)
	}
}

// TestUpdateNodeMergesProperties verifies key-by-key merge and the
// property index moving between value buckets.
func TestUpdateNodeMergesProperties(t *testing.T) {
	g := core.NewGraph()
	id, _ := g.CreateNode(nil, map[string]any{"city": "Riga", "age": 30})

	if err := g.UpdateNode(id, nil, map[string]any{"city": "Oslo", "job": "dev"}); err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}

	n, _ := g.Node(id)
	if v, _ := n.Property("city"); v.String() != "Oslo" {
		t.Errorf("city = %s; want Oslo", v)
	}
	if _, ok := n.Property("age"); !ok {
		t.Error("merge dropped untouched property age")
	}
	if _, ok := n.Property("job"); !ok {
		t.Error("merge did not add property job")
	}

	if got := g.FindNodes("", map[string]any{"city": "Riga"}); len(got) != 0 {
		t.Errorf("stale property index bucket Riga: %v", got)
	}
	if got := g.FindNodes("", map[string]any{"city": "Oslo"}); len(got) != 1 {
		t.Error("missing property index bucket Oslo")
	}
}

// TestDeleteNodeCascades verifies the cascade invariant: no surviving
// edge references a deleted node, and indexes hold no stale entries.
func TestDeleteNodeCascades(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.CreateNode([]string{"Person"}, nil)
	b, _ := g.CreateNode([]string{"Person"}, nil)
	c, _ := g.CreateNode([]string{"Person"}, nil)
	g.CreateEdge(a, b, "KNOWS", nil)
	g.CreateEdge(b, c, "KNOWS", nil)
	keep, _ := g.CreateEdge(a, c, "KNOWS", nil)

	if err := g.DeleteNode(b); err != nil {
		t.Fatalf("DeleteNode: %v", err)
	}

	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("counts = (%d,%d); want (2,1)", g.NodeCount(), g.EdgeCount())
	}
	if got := g.FindEdges("", b, ""); len(got) != 0 {
		t.Errorf("edges with deleted source survive: %v", got)
	}
	if got := g.FindEdges("", "", b); len(got) != 0 {
		t.Errorf("edges with deleted target survive: %v", got)
	}
	for _, e := range g.Edges() {
		if e.From == b || e.To == b {
			t.Errorf("edge %s references deleted node", e.ID)
		}
	}
	if _, err := g.Edge(keep); err != nil {
		t.Errorf("unrelated edge was cascaded away: %v", err)
	}

	if err := g.DeleteNode(b); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("double delete: want ErrNodeNotFound, got %v", err)
	}
}

// TestEdgeLifecycle verifies create/get/update/delete for edges.
func TestEdgeLifecycle(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.CreateNode(nil, nil)
	b, _ := g.CreateNode(nil, nil)

	if _, err := g.CreateEdge(a, "missing", "KNOWS", nil); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("missing target: want ErrNodeNotFound, got %v", err)
	}
	if _, err := g.CreateEdge(a, b, "", nil); !errors.Is(err, core.ErrEmptyEdgeType) {
		t.Errorf("empty type: want ErrEmptyEdgeType, got %v", err)
	}

	id, err := g.CreateEdge(a, b, "KNOWS", map[string]any{"since": 2020})
	if err != nil {
		t.Fatalf("CreateEdge: %v", err)
	}

	e, err := g.Edge(id)
	if err != nil || e.From != a || e.To != b || e.Type != "KNOWS" {
		t.Fatalf("Edge = %+v, err %v", e, err)
	}

	if err = g.UpdateEdge(id, "WORKS_WITH", map[string]any{"since": 2021}); err != nil {
		t.Fatalf("UpdateEdge: %v", err)
	}
	e, _ = g.Edge(id)
	if e.Type != "WORKS_WITH" {
		t.Errorf("type = %s; want WORKS_WITH", e.Type)
	}
	if v, _ := e.Property("since"); v.String() != "2021" {
		t.Errorf("since = %s; want 2021", v)
	}
	if got := g.FindEdges("KNOWS", "", ""); len(got) != 0 {
		t.Errorf("stale edge-type index bucket KNOWS: %v", got)
	}

	if err = g.DeleteEdge(id); err != nil {
		t.Fatalf("DeleteEdge: %v", err)
	}
	if _, err = g.Edge(id); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("deleted edge: want ErrEdgeNotFound, got %v", err)
	}
	if len(g.IncidentEdges(a)) != 0 || len(g.IncidentEdges(b)) != 0 {
		t.Error("stale adjacency entries after DeleteEdge")
	}
	if err = g.DeleteEdge(id); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("double delete: want ErrEdgeNotFound, got %v", err)
	}
}

// TestFindEdges verifies the predicate filter and type-index narrowing.
func TestFindEdges(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.CreateNode(nil, nil)
	b, _ := g.CreateNode(nil, nil)
	c, _ := g.CreateNode(nil, nil)
	ab, _ := g.CreateEdge(a, b, "KNOWS", nil)
	g.CreateEdge(b, c, "KNOWS", nil)
	g.CreateEdge(a, c, "WORKS_WITH", nil)

	if got := g.FindEdges("KNOWS", "", ""); len(got) != 2 {
		t.Errorf("FindEdges(KNOWS) = %d; want 2", len(got))
	}
	if got := g.FindEdges("", a, ""); len(got) != 2 {
		t.Errorf("FindEdges(from=a) = %d; want 2", len(got))
	}
	if got := g.FindEdges("KNOWS", a, b); len(got) != 1 || got[0].ID != ab {
		t.Errorf("FindEdges(KNOWS,a,b) = %v; want [%s]", got, ab)
	}
	if got := g.FindEdges("GHOST", "", ""); len(got) != 0 {
		t.Errorf("unknown type: got %v; want empty", got)
	}
}

// TestSelfLoop verifies self-loops occupy one adjacency bucket once and
// cascade correctly.
func TestSelfLoop(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.CreateNode(nil, nil)

	id, err := g.CreateEdge(a, a, "SELF", nil)
	if err != nil {
		t.Fatalf("self-loop: %v", err)
	}
	if got := g.IncidentEdges(a); len(got) != 1 || got[0].ID != id {
		t.Errorf("IncidentEdges = %v; want the single loop", got)
	}

	if err = g.DeleteNode(a); err != nil {
		t.Fatalf("DeleteNode: %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Error("self-loop survived its node")
	}
}

// TestLabelIndexConsistency runs a mutation sequence and checks the
// label index stays a pure function of node state throughout.
func TestLabelIndexConsistency(t *testing.T) {
	g := core.NewGraph()
	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		id, _ := g.CreateNode([]string{"Person"}, nil)
		ids = append(ids, id)
	}

	g.UpdateNode(ids[0], []string{"Robot"}, nil)
	g.DeleteNode(ids[1])

	people := g.FindNodes("Person", nil)
	if len(people) != 2 {
		t.Fatalf("Person = %d; want 2", len(people))
	}
	for _, n := range people {
		if !n.HasLabel("Person") {
			t.Errorf("index returned node %s without the label", n.ID)
		}
	}
	// Every labeled node must be findable through its label.
	for _, n := range g.Nodes() {
		for _, l := range n.Labels {
			found := false
			for _, m := range g.FindNodes(l, nil) {
				if m.ID == n.ID {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("node %s missing from label bucket %q", n.ID, l)
			}
		}
	}
	// A label nobody holds is empty.
	g.UpdateNode(ids[0], []string{"Person"}, nil)
	if got := g.FindNodes("Robot", nil); len(got) != 0 {
		t.Errorf("orphan label bucket Robot: %v", got)
	}
}
