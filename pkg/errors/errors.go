package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Handlers map these onto HTTP
// statuses; everything else is treated as an internal server error.
var (
	ErrNotConfigured = errors.New("service not configured")
	ErrBadInput      = errors.New("invalid input")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not found")
	ErrUnprocessable = errors.New("unprocessable entity")
	ErrUpstream      = errors.New("upstream fetch failed")
)

// Error carries a user-visible message on top of a sentinel or wrapped cause.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message.
func New(message string) error {
	return &Error{Message: message}
}

// Wrap wraps an error with an additional message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Message: message, Err: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Message returns the user-visible message for err: the outermost wrapped
// message if there is one, otherwise err's own text.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsBadInput(err error) bool {
	return errors.Is(err, ErrBadInput)
}

func IsUnprocessable(err error) bool {
	return errors.Is(err, ErrUnprocessable)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}
