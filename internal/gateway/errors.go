package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Semantic rejection kinds reported by the remote API. Use errors.Is against
// these to branch on the failure class.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidationRejected = errors.New("validation rejected")
	ErrServer             = errors.New("server error")
)

// APIError is a semantic rejection: the request reached the remote and was
// refused. It wraps one of the sentinel kinds above.
type APIError struct {
	Kind    error
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: %s (status %d)", e.Kind, e.Status)
}

func (e *APIError) Unwrap() error { return e.Kind }

// TransportError is a network-level failure: the request never produced a
// response (unreachable host, timeout, canceled context). It is distinct
// from a semantic rejection and callers must treat it as such.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// kindForStatus maps an HTTP status to a semantic kind. Login responses are
// special-cased by the caller: a 401 there means bad credentials, not a
// missing token.
func kindForStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return ErrValidationRejected
	default:
		return ErrServer
	}
}
