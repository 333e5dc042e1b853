// Package domainerrors defines the coded errors that cross service
// boundaries. Services translate store sentinels into these; the HTTP layer
// translates them into status codes and the public error envelope.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code identifies the class of a domain error. The string value is what
// clients see in the "error" field of the response envelope.
type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeValidation Code = "validation_error"
	CodeNotFound   Code = "not_found"
	CodeConflict   Code = "conflict"
	CodeInternal   Code = "internal_error"
)

// Error carries a code plus a human-readable message safe to return to
// clients (except for internal errors, which the HTTP layer redacts).
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// New builds a domain error with the given code and client-facing message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// From extracts a domain error from err's chain.
func From(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether err is a domain error with the given code.
func HasCode(err error, code Code) bool {
	de, ok := From(err)
	return ok && de.Code == code
}

// ToHTTPStatus maps a code to its response status. Conflicts map to 400, not
// 409: the enrollment API has always reported duplicate signups as plain bad
// requests and clients depend on that.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeConflict:
		return http.StatusBadRequest
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
