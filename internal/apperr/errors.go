// Package apperr defines the error taxonomy surfaced at the HTTP boundary.
// Anything that is not an *Error collapses to a generic internal error so
// no detail leaks to the client.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	NotFound Kind = iota + 1
	Conflict
	Unauthorized
	Forbidden
	Internal
)

// Error carries a classification and a client-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// StatusCode maps an error to an HTTP status. Unknown errors are internal.
func StatusCode(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-safe message for an error. Unknown errors get
// a generic message.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "There was an error"
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
