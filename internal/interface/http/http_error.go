package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError pairs a transport status with the error body fields so every
// failed request serializes the same way.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface, preferring the wrapped cause.
func (e *HTTPError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Message
	}
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

// toHTTPError resolves any error to an HTTPError. Errors that never got an
// explicit mapping render as an opaque 500 so internals stay off the wire.
func toHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
}

// abortWithError records the error for the rendering middleware and stops
// the handler chain.
func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
