package errors

import (
	"errors"
	"net/http"

	"github.com/pedro-candido/mvvm-app/internal/store"
)

var (
	// ErrUserNotFound is returned when login finds no user for the email.
	ErrUserNotFound = errors.New("User not found")
	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = errors.New("User already exists")
)

// ErrorResponse is the JSON error body returned by every failing route.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrUnknownCollection):
		return NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
