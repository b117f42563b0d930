package services

import (
	"errors"

	"github.com/mrlokans/library/internal/validation"
)

// ErrorKind classifies why a service operation failed.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindUnauthorized ErrorKind = "unauthorized"
	KindInternal     ErrorKind = "internal"
)

// Messages returned to clients.
const (
	MsgBookNotFound       = "book not found"
	MsgUserNotFound       = "user not found"
	MsgBorrowingNotFound  = "borrowing not found"
	MsgBookBorrowed       = "book already borrowed"
	MsgBookReturned       = "book already returned"
	MsgUserNotAuthorized  = "user not authorized"
	MsgEmailExists        = "email already exists"
	MsgBorrowDateTooEarly = "borrow date precedes the latest borrowing of this book"
	MsgInvalidInput       = "invalid input"
	MsgInternal           = "internal server error"
)

// Error is the single error type returned by services.
type Error struct {
	Kind    ErrorKind
	Message string
	Details []validation.FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == KindInternal {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a service error. Errors that did not come
// from a service are treated as internal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func invalid(err error) *Error {
	return &Error{Kind: KindValidation, Message: MsgInvalidInput, Details: validation.FieldErrors(err), Err: err}
}

// internal wraps a store or runtime failure; op names the failed step.
func internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Message: op, Err: err}
}
