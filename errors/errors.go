// Package errors defines HTTP-coded application errors shared by the
// controllers. Import it aliased (apperrors) next to the standard library.
package errors

import (
	"fmt"
	"net/http"
)

// Error is an application error carrying the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewParse wraps a spreadsheet parse failure. The whole parse is aborted and
// no partial state is retained.
func NewParse(err error) *Error {
	return New(http.StatusBadRequest, "Failed to parse file", err)
}

// NewValidation wraps a rejected request. Candidate state on the client is
// preserved for correction.
func NewValidation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NewStoreWrite wraps a document-store write failure. No local state is
// mutated, so the caller may retry.
func NewStoreWrite(err error) *Error {
	return New(http.StatusBadGateway, "Failed to write to document store", err)
}

// NewStoreRead wraps a document-store read failure.
func NewStoreRead(err error) *Error {
	return New(http.StatusBadGateway, "Failed to read from document store", err)
}

// Common error values.
var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)
