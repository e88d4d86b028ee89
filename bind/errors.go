package bind

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/tmplfn/value"
)

// Sentinel errors for the four failure classes. Returned errors match
// these with errors.Is.
var (
	// ErrArity is returned when a call supplies the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrDowncast is returned when an argument is not a template value.
	ErrDowncast = errors.New("unable to downcast to template value")

	// ErrConvert is returned when a variant cannot be coerced to the
	// declared parameter type.
	ErrConvert = errors.New("unable to convert template value")

	// ErrDomain is returned when the function body rejects its
	// already well-typed input.
	ErrDomain = errors.New("function rejected input")
)

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("expected %d argument(s), got %d", e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool { return target == ErrArity }

// DowncastError reports an argument that is not a value.Value.
type DowncastError struct {
	Pos int
}

func (e *DowncastError) Error() string {
	return fmt.Sprintf("argument %d: unable to downcast to template value", e.Pos)
}

func (e *DowncastError) Is(target error) bool { return target == ErrDowncast }

// ConvertError reports a variant that cannot be coerced to the
// declared parameter type.
type ConvertError struct {
	Pos  int
	Want string
	Got  value.Kind
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("argument %d: cannot convert %s to %s", e.Pos, e.Got, e.Want)
}

func (e *ConvertError) Is(target error) bool { return target == ErrConvert }

// DomainError wraps an error raised by the function body. Error
// returns the original message verbatim.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }

func (e *DomainError) Is(target error) bool { return target == ErrDomain }
