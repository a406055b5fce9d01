// Package core: the tagged-variant property value model.
//
// Value is a closed union over the six shapes a property may take:
// string, integer, float, boolean, sequence-of-value, and nested map.
// The Kind tag makes comparison, serialization, and index-key derivation
// exhaustive; there is no untyped escape hatch.
package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Kind tags the runtime shape of a Value.
type Kind uint8

// The six variant arms of Value.
const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindSequence
	KindMap
)

// String returns the advisory data_type tag for this kind, as written
// into exported documents.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	default:
		return "string"
	}
}

// kindFromTag resolves an advisory data_type tag back to a Kind.
func kindFromTag(tag string) (Kind, bool) {
	switch tag {
	case "string":
		return KindString, true
	case "integer":
		return KindInt, true
	case "float":
		return KindFloat, true
	case "boolean":
		return KindBool, true
	case "sequence":
		return KindSequence, true
	case "map":
		return KindMap, true
	default:
		return KindString, false
	}
}

// Value is a tagged union holding exactly one of the six variant arms.
// The zero Value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	bln  bool
	seq  []Value
	obj  map[string]Value
}

// String constructs a KindString value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int constructs a KindInt value.
func Int(i int64) Value { return Value{kind: KindInt, num: i} }

// Float constructs a KindFloat value.
func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }

// Bool constructs a KindBool value.
func Bool(b bool) Value { return Value{kind: KindBool, bln: b} }

// Sequence constructs a KindSequence value from its elements.
func Sequence(elems ...Value) Value {
	seq := make([]Value, len(elems))
	copy(seq, elems)

	return Value{kind: KindSequence, seq: seq}
}

// Map constructs a KindMap value from a key→value mapping.
func Map(m map[string]Value) Value {
	obj := make(map[string]Value, len(m))
	for k, v := range m {
		obj[k] = v
	}

	return Value{kind: KindMap, obj: obj}
}

// Kind reports which variant arm this value holds.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string payload; ok is false for other kinds.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsInt returns the integer payload; ok is false for other kinds.
func (v Value) AsInt() (int64, bool) { return v.num, v.kind == KindInt }

// AsFloat returns the float payload; ok is false for other kinds.
func (v Value) AsFloat() (float64, bool) { return v.flt, v.kind == KindFloat }

// AsBool returns the boolean payload; ok is false for other kinds.
func (v Value) AsBool() (bool, bool) { return v.bln, v.kind == KindBool }

// AsSequence returns a copy of the sequence payload; ok is false for other kinds.
func (v Value) AsSequence() ([]Value, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	out := make([]Value, len(v.seq))
	copy(out, v.seq)

	return out, true
}

// AsMap returns a copy of the map payload; ok is false for other kinds.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	out := make(map[string]Value, len(v.obj))
	for k, e := range v.obj {
		out[k] = e
	}

	return out, true
}

// Classify is the property-type classifier: it maps a raw value with no
// explicit data_type onto the variant. It accepts native Go scalars,
// json.Unmarshal output (float64, []any, map[string]any), pre-built
// Values, and degrades anything unrecognized to its string rendering.
func Classify(raw any) Value {
	switch v := raw.(type) {
	case Value:
		return v.clone()
	case string:
		return String(v)
	case bool:
		return Bool(v)
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return Int(int64(v))
	case uint8:
		return Int(int64(v))
	case uint16:
		return Int(int64(v))
	case uint32:
		return Int(int64(v))
	case uint64:
		return Int(int64(v))
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i)
		}
		if f, err := v.Float64(); err == nil {
			return Float(f)
		}

		return String(v.String())
	case []Value:
		return Sequence(v...)
	case []any:
		elems := make([]Value, len(v))
		for i, e := range v {
			elems[i] = Classify(e)
		}

		return Value{kind: KindSequence, seq: elems}
	case []string:
		elems := make([]Value, len(v))
		for i, s := range v {
			elems[i] = String(s)
		}

		return Value{kind: KindSequence, seq: elems}
	case map[string]Value:
		return Map(v)
	case map[string]any:
		obj := make(map[string]Value, len(v))
		for k, e := range v {
			obj[k] = Classify(e)
		}

		return Value{kind: KindMap, obj: obj}
	case nil:
		return String("")
	default:
		// Unknown shapes degrade to their string rendering.
		return String(fmt.Sprint(v))
	}
}

// Equal reports deep equality of kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.num == o.num
	case KindFloat:
		return v.flt == o.flt
	case KindBool:
		return v.bln == o.bln
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}

		return true
	case KindMap:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, e := range v.obj {
			oe, ok := o.obj[k]
			if !ok || !e.Equal(oe) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// clone deep-copies the value (sequence and map arms own their storage).
func (v Value) clone() Value {
	switch v.kind {
	case KindSequence:
		seq := make([]Value, len(v.seq))
		for i, e := range v.seq {
			seq[i] = e.clone()
		}

		return Value{kind: KindSequence, seq: seq}
	case KindMap:
		obj := make(map[string]Value, len(v.obj))
		for k, e := range v.obj {
			obj[k] = e.clone()
		}

		return Value{kind: KindMap, obj: obj}
	default:
		return v
	}
}

// key derives the canonical string under which the property index files
// this value. Scalars get a kind-prefixed literal; composites get their
// canonical JSON (map keys sorted by encoding/json), so equal values
// always share one index bucket and distinct kinds never collide.
func (v Value) key() string {
	switch v.kind {
	case KindString:
		return "s:" + v.str
	case KindInt:
		return "i:" + strconv.FormatInt(v.num, 10)
	case KindFloat:
		return "f:" + strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return "b:" + strconv.FormatBool(v.bln)
	case KindSequence:
		raw, _ := json.Marshal(v)

		return "q:" + string(raw)
	case KindMap:
		raw, _ := json.Marshal(v)

		return "m:" + string(raw)
	default:
		return "s:"
	}
}

// String renders the value for display and logging.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.bln)
	case KindSequence, KindMap:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("!%v", err)
		}

		return string(raw)
	default:
		return ""
	}
}

// MarshalJSON encodes the native shape: scalars as JSON scalars,
// sequences as arrays, maps as objects with sorted keys.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindInt:
		return json.Marshal(v.num)
	case KindFloat:
		return json.Marshal(v.flt)
	case KindBool:
		return json.Marshal(v.bln)
	case KindSequence:
		return json.Marshal(v.seq)
	case KindMap:
		// encoding/json writes map keys in sorted order, which keeps
		// composite index keys canonical.
		return json.Marshal(v.obj)
	default:
		return json.Marshal("")
	}
}

// UnmarshalJSON decodes an untagged JSON value through the classifier.
// Numbers decode as json.Number, so integral literals stay integers.
func (v *Value) UnmarshalJSON(data []byte) error {
	raw, err := decodeRaw(data)
	if err != nil {
		return err
	}
	*v = Classify(raw)

	return nil
}

// decodeRaw unmarshals arbitrary JSON with number fidelity preserved.
func decodeRaw(data []byte) (any, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("core: decode property value: %w", err)
	}

	return raw, nil
}

// propertyJSON is the wire shape of one property.
type propertyJSON struct {
	Key      string          `json:"key"`
	Value    json.RawMessage `json:"value"`
	DataType string          `json:"data_type"`
}

// MarshalJSON writes {key, value, data_type}, deriving the advisory tag
// from the value's kind.
func (p Property) MarshalJSON() ([]byte, error) {
	val, err := json.Marshal(p.Value)
	if err != nil {
		return nil, err
	}

	return json.Marshal(propertyJSON{Key: p.Key, Value: val, DataType: p.Value.Kind().String()})
}

// UnmarshalJSON restores a property, steering numeric decoding by the
// advisory data_type tag so "integer" survives a round trip.
func (p *Property) UnmarshalJSON(data []byte) error {
	var wire propertyJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("core: decode property: %w", err)
	}
	raw, err := decodeRaw(wire.Value)
	if err != nil {
		return err
	}
	val := Classify(raw)
	// Reconcile the decoded shape with the advisory tag where JSON is
	// ambiguous: a whole-number literal under a "float" tag stays float.
	if tag, ok := kindFromTag(wire.DataType); ok && tag != val.kind {
		switch {
		case tag == KindFloat && val.kind == KindInt:
			val = Float(float64(val.num))
		case tag == KindInt && val.kind == KindFloat && val.flt == float64(int64(val.flt)):
			val = Int(int64(val.flt))
		}
	}
	p.Key = wire.Key
	p.Value = val

	return nil
}

// keysOf returns the sorted keys of a string-keyed map.
func keysOf[M ~map[string]V, V any](m M) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
