// Package core_test verifies the property value variant and classifier.
package core_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/propgraph/core"
)

// TestClassifyArms covers every variant arm the classifier can produce.
func TestClassifyArms(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want core.Kind
	}{
		{"string", "hello", core.KindString},
		{"bool", true, core.KindBool},
		{"int", 42, core.KindInt},
		{"int64", int64(-7), core.KindInt},
		{"uint", uint(7), core.KindInt},
		{"float64", 3.14, core.KindFloat},
		{"float32", float32(1.5), core.KindFloat},
		{"slice", []any{"a", 1}, core.KindSequence},
		{"strings", []string{"a", "b"}, core.KindSequence},
		{"map", map[string]any{"k": 1}, core.KindMap},
		{"fallback", struct{ X int }{1}, core.KindString},
		{"nil", nil, core.KindString},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := core.Classify(tc.raw).Kind(); got != tc.want {
				t.Errorf("Classify(%v).Kind() = %v; want %v", tc.raw, got, tc.want)
			}
		})
	}
}

// TestClassifyNested verifies recursion into sequences and maps.
func TestClassifyNested(t *testing.T) {
	v := core.Classify(map[string]any{
		"tags": []any{"a", 2},
		"ok":   true,
	})
	m, ok := v.AsMap()
	if !ok {
		t.Fatal("want a map value")
	}
	seq, ok := m["tags"].AsSequence()
	if !ok || len(seq) != 2 {
		t.Fatalf("tags = %v; want 2-element sequence", m["tags"])
	}
	if seq[0].Kind() != core.KindString || seq[1].Kind() != core.KindInt {
		t.Errorf("element kinds = %v,%v; want string,integer", seq[0].Kind(), seq[1].Kind())
	}
	if b, ok := m["ok"].AsBool(); !ok || !b {
		t.Errorf("ok = %v; want true", m["ok"])
	}
}

// TestValueEqual verifies deep equality and kind separation.
func TestValueEqual(t *testing.T) {
	if !core.Int(5).Equal(core.Int(5)) {
		t.Error("Int(5) != Int(5)")
	}
	if core.Int(5).Equal(core.Float(5)) {
		t.Error("integer 5 must not equal float 5")
	}
	a := core.Sequence(core.String("x"), core.Int(1))
	b := core.Sequence(core.String("x"), core.Int(1))
	if !a.Equal(b) {
		t.Error("equal sequences compared unequal")
	}
	m1 := core.Map(map[string]core.Value{"k": core.Bool(true)})
	m2 := core.Map(map[string]core.Value{"k": core.Bool(false)})
	if m1.Equal(m2) {
		t.Error("distinct maps compared equal")
	}
}

// TestPropertyJSONRoundTrip verifies the advisory data_type tag is
// written and steers decoding, so integers survive JSON.
func TestPropertyJSONRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		val  core.Value
	}{
		{"string", core.String("hi")},
		{"integer", core.Int(42)},
		{"float-integral", core.Float(2)},
		{"float", core.Float(2.5)},
		{"boolean", core.Bool(true)},
		{"sequence", core.Sequence(core.Int(1), core.String("a"))},
		{"map", core.Map(map[string]core.Value{"k": core.Int(3)})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := core.Property{Key: "p", Value: tc.val}
			data, err := json.Marshal(p)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var back core.Property
			if err = json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back.Key != "p" {
				t.Errorf("key = %q; want p", back.Key)
			}
			if back.Value.Kind() != tc.val.Kind() {
				t.Errorf("kind after round trip = %v; want %v", back.Value.Kind(), tc.val.Kind())
			}
			if !back.Value.Equal(tc.val) {
				t.Errorf("value after round trip = %s; want %s", back.Value, tc.val)
			}
		})
	}
}

// TestPropertyJSONTag spot-checks the wire shape.
func TestPropertyJSONTag(t *testing.T) {
	data, err := json.Marshal(core.Property{Key: "age", Value: core.Int(30)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]any
	if err = json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("unmarshal wire: %v", err)
	}
	if wire["data_type"] != "integer" {
		t.Errorf("data_type = %v; want integer", wire["data_type"])
	}
	if wire["value"] != float64(30) {
		t.Errorf("value = %v; want 30", wire["value"])
	}
}
