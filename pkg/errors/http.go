package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the status code it should be answered with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrNotFound            = NewHTTPError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	ErrMethodNotAllowed    = NewHTTPError(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
)
