package apperror

import (
	"errors"
	"net/http"
)

// Error is an error carrying the HTTP status it should be reported with.
type Error struct {
	Status  int
	Message string
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// StatusOf maps an error to its HTTP status. Anything that is not an
// *Error is treated as an internal failure.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-facing message for an error. Internal
// failures are masked so database errors never leak to clients.
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}
