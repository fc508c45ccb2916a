package copier

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Failure kinds. Every error returned by a copy call matches exactly one of
// them through errors.Is.
var (
	// ErrUnsupportedShape is returned for funcs, channels and unsafe pointers,
	// which carry behavior or runtime state rather than data.
	ErrUnsupportedShape = errors.New("unsupported shape")

	// ErrConstruction is returned when a new aggregate instance cannot be
	// built: the initializer failed, panicked, or could not be fed.
	ErrConstruction = errors.New("construction failure")

	// ErrFieldAccess is returned when a struct field cannot be read from the
	// source or written to the copy.
	ErrFieldAccess = errors.New("field access failure")

	// ErrUnsupportedContainer is returned when a container has no known
	// replacement, or the replacement does not fit the slot being filled.
	ErrUnsupportedContainer = errors.New("unsupported container kind")

	// ErrDepthExceeded is returned when the graph is deeper than the
	// configured maximum depth.
	ErrDepthExceeded = errors.New("maximum copy depth exceeded")
)

// Error describes where in the source graph a copy failed.
type Error struct {
	// Kind is one of the failure sentinels above.
	Kind error
	// Path locates the failing value, e.g. "Agent.left.possibilities[1]".
	Path string
	// Type is the static type of the failing value.
	Type reflect.Type
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}

	if e.Type != nil {
		fmt.Fprintf(&b, " (%s)", e.Type)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}
