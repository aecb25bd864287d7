package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds. The HTTP layer maps a kind to its status code verbatim;
// the engine only ever decides the kind, never the transport code.
const (
	KindForbidden    = "FORBIDDEN"
	KindNotFound     = "NOT_FOUND"
	KindConflict     = "CONFLICT"
	KindUnauthorized = "UNAUTHORIZED"
	KindBadRequest   = "BAD_REQUEST"
	KindInternal     = "INTERNAL_ERROR"
)

// AppError is a tagged application error: an enumerated kind plus a
// human-readable message, optionally wrapping a lower-level cause.
type AppError struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Forbidden(message string) *AppError {
	if message == "" {
		message = "forbidden"
	}
	return &AppError{Kind: KindForbidden, Message: message, HTTPStatus: http.StatusForbidden}
}

func NotFound(message string) *AppError {
	if message == "" {
		message = "not found"
	}
	return &AppError{Kind: KindNotFound, Message: message, HTTPStatus: http.StatusNotFound}
}

// Conflict signals a write the store refused to keep an invariant,
// e.g. a capacity race detected under the room row lock.
func Conflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message, HTTPStatus: http.StatusConflict}
}

func Unauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message, HTTPStatus: http.StatusUnauthorized}
}

func BadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message, HTTPStatus: http.StatusBadRequest}
}

func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, HTTPStatus: http.StatusInternalServerError, Err: err}
}

// From extracts the AppError from err's chain, or nil.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind string) bool {
	appErr := From(err)
	return appErr != nil && appErr.Kind == kind
}
