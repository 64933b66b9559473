package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewUnauthenticated signals that no access token is present. Callers must
// not attempt the gated operation.
func NewUnauthenticated(message string) error {
	return NewDomainError("UNAUTHENTICATED", message, http.StatusUnauthorized, nil)
}

// NewLoadTransport signals that the inventory read got no response at all.
func NewLoadTransport(err error) error {
	return &DomainError{
		Code:       "LOAD_TRANSPORT",
		Message:    "failed to load tickets",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewLoadRemote signals that the upstream rejected the inventory read.
func NewLoadRemote(status int, message string) error {
	if message == "" {
		message = "failed to load tickets"
	}
	return NewDomainError("LOAD_REMOTE", message, http.StatusBadGateway, map[string]any{
		"upstream_status": status,
	})
}

// NewBookingValidation signals a local precondition failure; the network is
// never contacted.
func NewBookingValidation(message string, details map[string]any) error {
	return NewDomainError("BOOKING_VALIDATION", message, http.StatusBadRequest, details)
}

// NewBookingRemote signals that the upstream rejected the booking.
func NewBookingRemote(message string) error {
	if message == "" {
		message = "booking failed"
	}
	return NewDomainError("BOOKING_REMOTE", message, http.StatusConflict, nil)
}

// NewBookingTransport signals that the booking call got no response.
func NewBookingTransport(err error) error {
	return &DomainError{
		Code:       "BOOKING_TRANSPORT",
		Message:    "booking failed",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err carries the given DomainError code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
