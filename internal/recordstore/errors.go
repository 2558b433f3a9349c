package recordstore

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound maps upstream 404 responses.
	ErrNotFound = errors.New("record not found")
	// ErrUnauthorized maps upstream 401: the credential is missing, wrong
	// or expired. Callers must drop the session and force re-login.
	ErrUnauthorized = errors.New("record store rejected credential")
)

// TransportError wraps network-level failures (DNS, refused connection,
// timeout). The request may or may not have reached the store; callers must
// never report success on it.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("record store %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ConflictError is a server-side referential constraint (e.g. an active
// vehicle assignment blocking a delete). Detail is the store's message
// verbatim and is safe to show to the operator.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string { return "record store conflict: " + e.Detail }

// StatusError is any other non-2xx answer, with whatever detail message the
// store provided.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("record store returned %d", e.Code)
	}
	return fmt.Sprintf("record store returned %d: %s", e.Code, e.Detail)
}
