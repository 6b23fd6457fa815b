package boundary

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling with errors.Is. Every failure
// of the conversion protocol wraps exactly one of these. All of them are
// returned to the caller; none is retried or swallowed, and none is fatal
// to the process.
var (
	// ErrNotAnObject indicates the boundary value failed the object-ness
	// test.
	ErrNotAnObject = errors.New("value is not an object")

	// ErrMissingAccessor indicates the identity-tag accessor property is
	// absent or not invocable. Usually the type's bindings were never
	// generated.
	ErrMissingAccessor = errors.New("missing identity accessor")

	// ErrIdentity indicates the accessor invocation failed or returned a
	// non-string.
	ErrIdentity = errors.New("could not obtain identity tag")

	// ErrTypeMismatch indicates the identity tag names a different
	// exported type than the one requested.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingHandle indicates the embedded handle property is absent.
	ErrMissingHandle = errors.New("missing instance handle")

	// ErrInvalidHandle indicates the handle property is non-numeric, no
	// longer resolves to a live instance, or resolves to an instance of
	// the wrong native type.
	ErrInvalidHandle = errors.New("invalid instance handle")

	// ErrNotAnArray indicates the bulk-import source failed the
	// array-like test.
	ErrNotAnArray = errors.New("argument wasn't an array type")
)

// ConversionError wraps a sentinel error with the type names involved and,
// for bulk imports, the index of the offending element.
type ConversionError struct {
	Err      error  // underlying sentinel error
	Expected string // requested exported type tag
	Actual   string // tag the value actually carried, when known
	Index    int    // element index for bulk-import failures, -1 otherwise
	Detail   string // extra context from the host runtime, when any
}

func (e *ConversionError) Error() string {
	msg := e.Err.Error()

	switch {
	case errors.Is(e.Err, ErrNotAnObject):
		msg = fmt.Sprintf("value supplied as %s is not an object", e.Expected)
	case errors.Is(e.Err, ErrMissingAccessor):
		msg = fmt.Sprintf("no %s method specified for object; did you forget to generate bindings for %s?",
			TagMethod, e.Expected)
	case errors.Is(e.Err, ErrTypeMismatch):
		msg = fmt.Sprintf("cannot convert %s to %s", e.Actual, e.Expected)
	case errors.Is(e.Err, ErrIdentity), errors.Is(e.Err, ErrMissingHandle), errors.Is(e.Err, ErrInvalidHandle):
		msg = fmt.Sprintf("%s for %s", e.Err.Error(), e.Expected)
	}

	if e.Detail != "" {
		msg = msg + ": " + e.Detail
	}

	if e.Index >= 0 {
		msg = fmt.Sprintf("element %d: %s", e.Index, msg)
	}

	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// conversionErr builds a single-value ConversionError for the expected tag.
func conversionErr(err error, expected string) *ConversionError {
	return &ConversionError{Err: err, Expected: expected, Index: -1}
}

// elementErr rewraps an element's conversion failure with its index. The
// element's own sentinel stays visible through Unwrap.
func elementErr(err error, index int) error {
	var conv *ConversionError
	if errors.As(err, &conv) {
		clone := *conv
		clone.Index = index

		return &clone
	}

	return &ConversionError{Err: err, Index: index}
}
