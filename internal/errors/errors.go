package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a booking lacks a required field.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidDate is returned when a date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	// ErrInvalidTime is returned when a time of day is not a valid HH:MM.
	ErrInvalidTime = errors.New("invalid time, expected HH:MM")
	// ErrInvalidID is returned when a referenced id is malformed.
	ErrInvalidID = errors.New("invalid id")
	// ErrDoctorNotFound is returned when no doctor matches the login email.
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrInvalidToken is returned when a bearer token is missing, expired or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAppointmentNotFound is returned when an appointment id does not resolve.
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	// Internal keeps the original cause of a 5xx for logging. It is never rendered.
	Internal error
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the original cause.
func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unknown becomes a
// generic 500 that keeps err as its internal cause.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidTime),
		errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDoctorNotFound),
		errors.Is(err, ErrAppointmentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidPassword),
		errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		e := NewHTTPError(http.StatusInternalServerError, "internal server error")
		e.Internal = err
		return e
	}
}
