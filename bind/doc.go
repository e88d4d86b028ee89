// Package bind adapts statically-typed Go functions to the uniform
// callable shape a template engine invokes.
//
// The engine only knows how to pass opaque arguments ([]any) captured
// at parse time. Func1 through Func4 wrap a function of concrete
// parameter types into a Func that checks arity, downcasts each
// argument to the dynamic value union, converts it to the declared
// static type, invokes the function, and wraps the result back into a
// value.Value.
//
//	upper := bind.Func1(func(s string) (string, error) {
//		return strings.ToUpper(s), nil
//	})
//	out, err := upper([]any{value.String("hi")})
//	// out.(value.Value).StringVal() == "HI"
//
// # Conversion Rules
//
// Each declared parameter type accepts only the matching variants:
//
//   - string: the string variant
//   - int64, uint64: int and float variants, truncated toward zero,
//     with range checks
//   - float64: int and float variants
//   - bool: the bool variant
//   - map[string]string: the map variant when every value is a string
//   - value.Value: any variant, passed through unconverted
//
// There is no implicit parsing between strings and numbers; a mismatch
// is a hard failure.
//
// Results wrap back into the matching variant. A uint64 result above
// the int range becomes the float variant, preserving magnitude
// instead of overflowing to a negative int.
//
// # Errors
//
// Every failure is returned as a value, never a panic. The four
// failure classes carry sentinel errors for errors.Is: ErrArity,
// ErrDowncast, ErrConvert, and ErrDomain. A non-nil error returned by
// the wrapped function becomes a DomainError whose message is
// preserved verbatim.
//
// The adapter holds no state and never mutates its argument slice, so
// a Func may be called concurrently from multiple evaluation
// goroutines.
package bind
