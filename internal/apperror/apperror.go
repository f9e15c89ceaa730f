// Package apperror defines the typed, status-carrying error used by the
// service layer for expected failure conditions. Handlers never build error
// responses themselves; they return one of these values (or a raw error) and
// the central HTTP error handler maps it onto the response envelope. Anything
// that is not an *apperror.Error is treated as an internal failure.
package apperror

import "net/http"

// Error carries a human-readable message together with the HTTP status the
// response should use. The message is sent to the caller verbatim, so it must
// never contain internal details.
type Error struct {
	Status  int    // HTTP status code for the response
	Message string // message forwarded to the client as-is
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// New builds an Error with an arbitrary status code.
func New(message string, status int) *Error {
	return &Error{Status: status, Message: message}
}

// NotFound marks a referenced entity as absent (404).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// BadRequest marks a validation failure: missing fields, invalid enum value,
// unparsable date (400).
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Conflict marks a uniqueness violation: duplicate email, section code or
// membership. The source API reuses 400 for these rather than 409, and that
// status is part of the observable contract.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}
