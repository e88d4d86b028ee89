package value

import (
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindMap
)

// String returns the kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is one instance of the dynamic value union. The zero Value is
// the nil variant.
type Value struct {
	kind Kind
	data any
}

// Nil returns the nil variant.
func Nil() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, data: b} }

// Int wraps an integer.
func Int(n int64) Value { return Value{kind: KindInt, data: n} }

// Float wraps a float.
func Float(f float64) Value { return Value{kind: KindFloat, data: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, data: s} }

// Array wraps an ordered sequence of values.
func Array(elems ...Value) Value {
	out := make([]Value, len(elems))
	copy(out, elems)
	return Value{kind: KindArray, data: out}
}

// Map wraps a string-keyed map of values. The map is copied.
func Map(m map[string]Value) Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return Value{kind: KindMap, data: out}
}

// StringMap wraps a map of strings as a map variant with string values.
func StringMap(m map[string]string) Value {
	out := make(map[string]Value, len(m))
	for k, v := range m {
		out[k] = String(v)
	}
	return Value{kind: KindMap, data: out}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// BoolVal returns the boolean variant, or false for other kinds.
func (v Value) BoolVal() bool {
	b, _ := v.data.(bool)
	return b
}

// IntVal returns the integer variant, or 0 for other kinds.
func (v Value) IntVal() int64 {
	n, _ := v.data.(int64)
	return n
}

// FloatVal returns the float variant, or 0 for other kinds.
func (v Value) FloatVal() float64 {
	f, _ := v.data.(float64)
	return f
}

// StringVal returns the string variant, or "" for other kinds.
func (v Value) StringVal() string {
	s, _ := v.data.(string)
	return s
}

// ArrayVal returns the array variant, or nil for other kinds. The
// returned slice must not be mutated.
func (v Value) ArrayVal() []Value {
	a, _ := v.data.([]Value)
	return a
}

// MapVal returns the map variant, or nil for other kinds. The returned
// map must not be mutated.
func (v Value) MapVal() map[string]Value {
	m, _ := v.data.(map[string]Value)
	return m
}

// Equal reports deep structural equality. Array elements compare in
// order; map entries compare without order. Different kinds are never
// equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindArray:
		a, b := v.ArrayVal(), o.ArrayVal()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindMap:
		a, b := v.MapVal(), o.MapVal()
		if len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !av.Equal(bv) {
				return false
			}
		}
		return true
	default:
		return v.data == o.data
	}
}

// Text returns the display form of v, as used when a value is
// interpolated into template output.
func (v Value) Text() string {
	switch v.kind {
	case KindNil:
		return ""
	case KindBool:
		return strconv.FormatBool(v.BoolVal())
	case KindInt:
		return strconv.FormatInt(v.IntVal(), 10)
	case KindFloat:
		return strconv.FormatFloat(v.FloatVal(), 'g', -1, 64)
	case KindString:
		return v.StringVal()
	case KindArray:
		elems := v.ArrayVal()
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.Text()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindMap:
		m := v.MapVal()
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ":" + m[k].Text()
		}
		return "map[" + strings.Join(parts, " ") + "]"
	default:
		return ""
	}
}
