package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT / tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token expired")
	ErrTokenNotFound        = fmt.Errorf("token not found")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("malformed authorization header")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrForbidden          = fmt.Errorf("forbidden")

	// Request context
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")
	ErrInvalidUserID           = fmt.Errorf("invalid user id")

	// Common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrBadRequest = fmt.Errorf("bad request")
	ErrConflict   = fmt.Errorf("conflict")
)

// HttpError carries the HTTP status and the user-facing message for a
// failed operation. Message is what goes on the wire; Err keeps the
// underlying cause for the logs.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details ...map[string]interface{}) *HttpError {
	he := &HttpError{Code: code, Message: message, Err: err}
	if len(details) > 0 {
		he.Details = details[0]
	}
	return he
}

func NewBadRequestError(message string, err error) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, err)
}

func NewUnauthorizedError(message string, err error) *HttpError {
	return NewHttpError(http.StatusUnauthorized, message, err)
}

func NewForbiddenError(message string, err error) *HttpError {
	return NewHttpError(http.StatusForbidden, message, err)
}

func NewNotFoundError(message string, err error) *HttpError {
	return NewHttpError(http.StatusNotFound, message, err)
}

func NewConflictError(message string, err error) *HttpError {
	return NewHttpError(http.StatusConflict, message, err)
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
