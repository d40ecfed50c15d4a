// Package serrors provides semantic error kinds so that callers can classify
// failures with errors.Is without inspecting message strings. Services wrap
// causes with a kind; the HTTP layer maps kinds to status codes in one place.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel category for an error. Kinds are comparable and match
// through errors.Is when attached to an Error.
type Kind string

// Error implements the error interface so a Kind can be used as an errors.Is
// target directly.
func (k Kind) Error() string { return string(k) }

// Kinds used across the application.
const (
	// ErrBadRequest indicates invalid or missing caller input.
	ErrBadRequest Kind = "BAD_REQUEST"
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized Kind = "UNAUTHORIZED"
	// ErrForbidden indicates the caller is authenticated but not allowed to act
	// on the resource.
	ErrForbidden Kind = "FORBIDDEN"
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound Kind = "NOT_FOUND"
	// ErrUnavailable indicates an upstream collaborator failed or refused.
	ErrUnavailable Kind = "UNAVAILABLE"
	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal Kind = "INTERNAL"
)

// Error carries a Kind, an optional wrapped cause and a human-readable
// message. It supports errors.Is/As for both the kind and the cause chain.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs an Error of the given kind with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs an Error of the given kind wrapping a concrete cause.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		return e.kind.Error()
	}
}

// Unwrap exposes the wrapped cause to errors.Unwrap/Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches against the kind sentinel as well as the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if k, ok := target.(Kind); ok {
		return e.kind == k
	}

	return e.err != nil && errors.Is(e.err, target)
}

// Kind returns the semantic kind attached to this error.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error, without the cause.
func (e *Error) Message() string { return e.msg }

// KindOf extracts the Kind from anywhere in err's chain. It returns
// ErrInternal when no semantic kind is attached.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}
