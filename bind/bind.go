package bind

import (
	"math"

	"github.com/randalmurphal/tmplfn/value"
)

// Func is the uniform callable shape the template engine invokes: an
// ordered argument list in, a wrapped value.Value (or error) out. The
// engine owns the argument slice; a Func never mutates it.
type Func func(args []any) (any, error)

// Arg constrains the static parameter types an adapted function may
// declare. value.Value passes the argument through unconverted, for
// functions that inspect the variant themselves.
type Arg interface {
	string | int64 | uint64 | bool | float64 | map[string]string | value.Value
}

// Result constrains the static return types an adapted function may
// declare. value.Value passes through unwrapped, for functions that
// build their own result variant.
type Result interface {
	string | int64 | uint64 | bool | float64 | map[string]string | value.Value
}

// Func1 adapts a one-parameter function.
func Func1[A Arg, R Result](fn func(A) (R, error)) Func {
	return func(args []any) (any, error) {
		if len(args) != 1 {
			return nil, &ArityError{Want: 1, Got: len(args)}
		}
		a, err := convert[A](args[0], 0)
		if err != nil {
			return nil, err
		}
		return invoke(func() (R, error) { return fn(a) })
	}
}

// Func2 adapts a two-parameter function.
func Func2[A, B Arg, R Result](fn func(A, B) (R, error)) Func {
	return func(args []any) (any, error) {
		if len(args) != 2 {
			return nil, &ArityError{Want: 2, Got: len(args)}
		}
		a, err := convert[A](args[0], 0)
		if err != nil {
			return nil, err
		}
		b, err := convert[B](args[1], 1)
		if err != nil {
			return nil, err
		}
		return invoke(func() (R, error) { return fn(a, b) })
	}
}

// Func3 adapts a three-parameter function.
func Func3[A, B, C Arg, R Result](fn func(A, B, C) (R, error)) Func {
	return func(args []any) (any, error) {
		if len(args) != 3 {
			return nil, &ArityError{Want: 3, Got: len(args)}
		}
		a, err := convert[A](args[0], 0)
		if err != nil {
			return nil, err
		}
		b, err := convert[B](args[1], 1)
		if err != nil {
			return nil, err
		}
		c, err := convert[C](args[2], 2)
		if err != nil {
			return nil, err
		}
		return invoke(func() (R, error) { return fn(a, b, c) })
	}
}

// Func4 adapts a four-parameter function.
func Func4[A, B, C, D Arg, R Result](fn func(A, B, C, D) (R, error)) Func {
	return func(args []any) (any, error) {
		if len(args) != 4 {
			return nil, &ArityError{Want: 4, Got: len(args)}
		}
		a, err := convert[A](args[0], 0)
		if err != nil {
			return nil, err
		}
		b, err := convert[B](args[1], 1)
		if err != nil {
			return nil, err
		}
		c, err := convert[C](args[2], 2)
		if err != nil {
			return nil, err
		}
		d, err := convert[D](args[3], 3)
		if err != nil {
			return nil, err
		}
		return invoke(func() (R, error) { return fn(a, b, c, d) })
	}
}

// invoke runs the converted call and wraps its result. A non-nil error
// from the function body is surfaced as a DomainError with the message
// intact.
func invoke[R Result](call func() (R, error)) (any, error) {
	r, err := call()
	if err != nil {
		return nil, &DomainError{Msg: err.Error()}
	}
	return wrap(any(r)), nil
}

// convert downcasts one opaque argument to the value union and coerces
// it to the static type T.
func convert[T Arg](arg any, pos int) (T, error) {
	var zero T
	v, ok := arg.(value.Value)
	if !ok {
		return zero, &DowncastError{Pos: pos}
	}
	out, err := coerce(v, pos, any(zero))
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

// coerce applies the per-type conversion rules. The zero argument
// carries the target type; the returned any holds exactly that type on
// success.
func coerce(v value.Value, pos int, zero any) (any, error) {
	switch zero.(type) {
	case string:
		if v.Kind() != value.KindString {
			return nil, &ConvertError{Pos: pos, Want: "string", Got: v.Kind()}
		}
		return v.StringVal(), nil

	case int64:
		switch v.Kind() {
		case value.KindInt:
			return v.IntVal(), nil
		case value.KindFloat:
			f := v.FloatVal()
			if math.IsNaN(f) || f >= float64(math.MaxInt64) || f < float64(math.MinInt64) {
				return nil, &ConvertError{Pos: pos, Want: "int", Got: v.Kind()}
			}
			return int64(f), nil
		}
		return nil, &ConvertError{Pos: pos, Want: "int", Got: v.Kind()}

	case uint64:
		switch v.Kind() {
		case value.KindInt:
			n := v.IntVal()
			if n < 0 {
				return nil, &ConvertError{Pos: pos, Want: "uint", Got: v.Kind()}
			}
			return uint64(n), nil
		case value.KindFloat:
			f := v.FloatVal()
			if math.IsNaN(f) || f < 0 || f >= float64(math.MaxUint64) {
				return nil, &ConvertError{Pos: pos, Want: "uint", Got: v.Kind()}
			}
			return uint64(f), nil
		}
		return nil, &ConvertError{Pos: pos, Want: "uint", Got: v.Kind()}

	case float64:
		switch v.Kind() {
		case value.KindInt:
			return float64(v.IntVal()), nil
		case value.KindFloat:
			return v.FloatVal(), nil
		}
		return nil, &ConvertError{Pos: pos, Want: "float", Got: v.Kind()}

	case bool:
		if v.Kind() != value.KindBool {
			return nil, &ConvertError{Pos: pos, Want: "bool", Got: v.Kind()}
		}
		return v.BoolVal(), nil

	case map[string]string:
		if v.Kind() != value.KindMap {
			return nil, &ConvertError{Pos: pos, Want: "map of string", Got: v.Kind()}
		}
		src := v.MapVal()
		out := make(map[string]string, len(src))
		for k, mv := range src {
			if mv.Kind() != value.KindString {
				return nil, &ConvertError{Pos: pos, Want: "map of string", Got: mv.Kind()}
			}
			out[k] = mv.StringVal()
		}
		return out, nil

	case value.Value:
		return v, nil
	}
	// Unreachable: the Arg constraint admits no other types.
	return nil, &ConvertError{Pos: pos, Want: "supported type", Got: v.Kind()}
}

// wrap converts a static return value back into the value union. A
// uint64 above the int range wraps into the float variant rather than
// overflowing to a negative int.
func wrap(r any) any {
	switch x := r.(type) {
	case string:
		return value.String(x)
	case bool:
		return value.Bool(x)
	case int64:
		return value.Int(x)
	case uint64:
		if x > math.MaxInt64 {
			return value.Float(float64(x))
		}
		return value.Int(int64(x))
	case float64:
		return value.Float(x)
	case map[string]string:
		return value.StringMap(x)
	case value.Value:
		return x
	}
	// Unreachable: the Result constraint admits no other types.
	return value.Nil()
}
