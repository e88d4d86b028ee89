// Package tmplfn provides string functions for template engines with
// dynamically typed values.
//
// tmplfn is a standalone library designed to be imported à la carte.
// Each subpackage can be used independently:
//
//   - value: The dynamic value union (nil, bool, int, float, string, array, map)
//   - bind: Adapters that expose statically-typed Go functions to the engine
//   - funcs: The string function library (encoding, truncation, trimming, ...)
//   - config: Runtime configuration with hot reload
//   - catalog: Function table export as YAML with a JSON Schema
//
// # Quick Start
//
// Build the function table and call a function the way an engine would:
//
//	lib := funcs.New()
//	fm := lib.FuncMap()
//	out, err := fm["trim"]([]any{value.String("  hi  ")})
//
// Adapt your own function:
//
//	double := bind.Func1(func(s string) (string, error) { return s + s, nil })
//	out, err := double([]any{value.String("ha")})
//
// Export the function catalog:
//
//	doc := catalog.Build(lib)
//	data, err := doc.YAML()
package tmplfn
