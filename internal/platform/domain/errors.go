package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for boundary mapping.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindPaymentRequired ErrorKind = "payment_required"
	KindForbidden       ErrorKind = "forbidden"
	KindUnauthorized    ErrorKind = "unauthorized"
	KindValidation      ErrorKind = "validation"
	KindConflict        ErrorKind = "conflict"
	KindInvalidState    ErrorKind = "invalid_state"
)

// Error is the domain error type carried from services to the HTTP boundary.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFoundError indicates a required entity is absent.
func NewNotFoundError(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", entity, id)}
}

// NewPaymentRequiredError indicates the caller's ticket does not grant hotel access.
func NewPaymentRequiredError(message string) *Error {
	return &Error{Kind: KindPaymentRequired, Message: message}
}

// NewForbiddenError indicates the operation is not allowed for the caller.
func NewForbiddenError(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NewUnauthorizedError indicates the caller does not own the target resource.
func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NewValidationError indicates malformed or missing input.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewConflictError indicates a concurrent modification was detected.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewInvalidStateError indicates a state transition that the lifecycle does not allow.
func NewInvalidStateError(from, to string) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf("cannot transition from %s to %s", from, to)}
}

// KindOf returns the kind of err if it is a domain error, or "" otherwise.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
