package snapshot

import (
	"errors"
	"fmt"
	"strings"
)

// Failure kinds. Every error returned by this package wraps one of them.
var (
	ErrSchema     = errors.New("schema violation")
	ErrCapacity   = errors.New("capacity overflow")
	ErrUnresolved = errors.New("unresolved reference")
	ErrMissing    = errors.New("missing dependency data")
	ErrCorrupt    = errors.New("corrupt snapshot data")
)

// Error locates a failure in the object list.
type Error struct {
	Kind   error  // one of the Err* kinds
	Object string // object id, empty when the failure is not tied to one object
	Field  string
	Detail string
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("snapshot: ")
	if e.Object != "" {
		sb.WriteString(e.Object)
		if e.Field != "" {
			sb.WriteString(" ")
			sb.WriteString(e.Field)
		}
		sb.WriteString(": ")
	} else if e.Field != "" {
		sb.WriteString(e.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Kind.Error())
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, object, field, format string, args ...any) *Error {
	return &Error{Kind: kind, Object: object, Field: field, Detail: fmt.Sprintf(format, args...)}
}

// valueField and methodField name a list entry for error context.
func valueField(name string) string {
	return fmt.Sprintf("values[%q]", name)
}

func methodField(name string) string {
	return fmt.Sprintf("functions[%q]", name)
}
