// Package value defines the dynamic value union exchanged between a
// template engine and its registered functions.
//
// A Value holds exactly one variant: nil, bool, int, float, string,
// array, or map. Values are immutable after construction; every
// transformation produces a new Value.
//
// # Construction
//
//	value.String("hello")
//	value.Int(42)
//	value.Array(value.String("a"), value.String("b"))
//	value.StringMap(map[string]string{"_0": "foo"})
//
// # Equality
//
// Equal compares structurally: array elements in order, map entries
// without order. Values of different kinds are never equal; Int(1)
// and Float(1.0) are distinct.
//
// # Display
//
// Text returns the display form used when a value is interpolated into
// a string, for example by the join function.
package value
