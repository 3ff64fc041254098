package seat

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// InputError means the command was invoked incorrectly.
	InputError Kind = iota + 1

	// IoError means the input could not be opened or read.
	IoError

	// DecodeError means a seat code could not be decoded.
	DecodeError

	// AnalysisError means no answer could be computed from the seats.
	AnalysisError
)

func (k Kind) String() string {
	switch k {
	case InputError:
		return "InputError"
	case IoError:
		return "IoError"
	case DecodeError:
		return "DecodeError"
	case AnalysisError:
		return "AnalysisError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the error type that every package in this module returns.
type Error struct {
	Kind Kind

	// Message is the human readable message.
	Message string

	// Line is the 1-based input line the error came from; 0 if unknown.
	Line int

	// Err is the underlying cause, if any.
	Err error
}

// NewError returns a new Error of given kind with no cause.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError returns a new Error of given kind caused by err.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err if err is or wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
