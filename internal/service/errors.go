package service

import (
	"errors"
	"net/http"
)

// Kind classifies a service failure for status-code mapping.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error is the typed failure every service operation returns. Message is
// safe to show to the caller; internal detail stays in the server log.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func ErrInvalid(msg string) *Error      { return &Error{Kind: KindInvalidInput, Message: msg} }
func ErrUnauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func ErrForbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Message: msg} }
func ErrNotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func ErrConflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }
func ErrInternal(msg string) *Error     { return &Error{Kind: KindInternal, Message: msg} }

// HTTPStatus maps a failure to its response code. Conflicts report 400, as
// the uniqueness and referential-integrity messages are client errors here.
func HTTPStatus(err error) int {
	var se *Error
	if !errors.As(err, &se) {
		return http.StatusInternalServerError
	}
	switch se.Kind {
	case KindInvalidInput, KindConflict:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
