package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the stable error-code string carried in the response envelope.
type Code string

const (
	CodeInvalidInput          Code = "INVALID_INPUT"
	CodeInvalidCredentials    Code = "INVALID_CREDENTIALS"
	CodeUnauthenticated       Code = "UNAUTHENTICATED"
	CodeForbidden             Code = "FORBIDDEN"
	CodeDuplicateEmail        Code = "DUPLICATE_EMAIL"
	CodeAlreadyEnrolled       Code = "ALREADY_ENROLLED"
	CodeInvalidTransition     Code = "INVALID_TRANSITION"
	CodeNotFound              Code = "NOT_FOUND"
	CodeCourseNotFound        Code = "COURSE_NOT_FOUND"
	CodeDependencyUnavailable Code = "DEPENDENCY_UNAVAILABLE"
	CodeInternal              Code = "INTERNAL"

	// Transport-level backpressure codes, retryable by the caller.
	CodeRateLimited Code = "RATE_LIMITED"
	CodeServerBusy  Code = "SERVER_BUSY"

	// Token-layer codes. The HTTP gate collapses all three into
	// CodeUnauthenticated so callers get no oracle about why a token failed.
	CodeExpired        Code = "EXPIRED"
	CodeBadSignature   Code = "BAD_SIGNATURE"
	CodeMalformedToken Code = "MALFORMED_TOKEN"
)

type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func E(code Code, msg string) *Error { return &Error{Code: code, Msg: msg} }

func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Msg: msg, Err: err}
}

func Ef(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the domain code from err, CodeInternal if it carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given domain code.
func IsCode(err error, code Code) bool { return CodeOf(err) == code }

var httpStatus = map[Code]int{
	CodeInvalidInput:          http.StatusBadRequest,
	CodeInvalidCredentials:    http.StatusUnauthorized,
	CodeUnauthenticated:       http.StatusUnauthorized,
	CodeExpired:               http.StatusUnauthorized,
	CodeBadSignature:          http.StatusUnauthorized,
	CodeMalformedToken:        http.StatusUnauthorized,
	CodeForbidden:             http.StatusForbidden,
	CodeDuplicateEmail:        http.StatusConflict,
	CodeAlreadyEnrolled:       http.StatusConflict,
	CodeInvalidTransition:     http.StatusConflict,
	CodeNotFound:              http.StatusNotFound,
	CodeCourseNotFound:        http.StatusNotFound,
	CodeDependencyUnavailable: http.StatusServiceUnavailable,
	CodeInternal:              http.StatusInternalServerError,
	CodeRateLimited:           http.StatusTooManyRequests,
	CodeServerBusy:            http.StatusServiceUnavailable,
}

// HTTPStatus maps a code to its HTTP status, 500 for unknown codes.
func HTTPStatus(code Code) int {
	if s, ok := httpStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
