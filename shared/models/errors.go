package models

import "github.com/pkg/errors"

// ErrorKind classifies failures that cross a service boundary
type ErrorKind string

const (
	KindInvalidInput       ErrorKind = "invalid_input"
	KindNotFound           ErrorKind = "not_found"
	KindPreconditionFailed ErrorKind = "precondition_failed"
	KindForbidden          ErrorKind = "forbidden"
	KindGatewayDeclined    ErrorKind = "gateway_declined"
)

// Kind sentinels, match them with errors.Is
var (
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrPreconditionFailed = &Error{Kind: KindPreconditionFailed}
	ErrForbidden          = &Error{Kind: KindForbidden}
	ErrGatewayDeclined    = &Error{Kind: KindGatewayDeclined}
)

// Error is a classified error carrying a stable, user-facing message
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// Is matches bare kind sentinels against any error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

func NewInvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewPreconditionFailed(message string) *Error {
	return &Error{Kind: KindPreconditionFailed, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NewGatewayDeclined(message string) *Error {
	return &Error{Kind: KindGatewayDeclined, Message: message}
}

// KindOf returns the kind and message of the first classified error in the chain.
func KindOf(err error) (ErrorKind, string, bool) {
	var classified *Error
	if !errors.As(err, &classified) {
		return "", "", false
	}
	return classified.Kind, classified.Error(), true
}
