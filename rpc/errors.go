package rpc

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
)

// Error is a failed RPC. The request may or may not have reached the server.
type Error struct {
	Method string
	Code   codes.Code
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc %s: %s: %v", e.Method, e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(method string, code codes.Code, err error) *Error {
	return &Error{Method: method, Code: code, Err: err}
}

// IsTransport reports whether err came from an RPC.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// Code returns the RPC code of err, codes.OK for nil and codes.Unknown for
// errors that are not RPC errors.
func Code(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return codes.Unknown
}

func codeFromHTTPStatus(status int) codes.Code {
	switch {
	case status == http.StatusOK:
		return codes.OK
	case status == http.StatusBadRequest:
		return codes.InvalidArgument
	case status == http.StatusUnauthorized:
		return codes.Unauthenticated
	case status == http.StatusForbidden:
		return codes.PermissionDenied
	case status == http.StatusNotFound:
		return codes.NotFound
	case status == http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case status >= 500:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}
