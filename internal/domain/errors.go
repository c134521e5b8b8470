package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the request boundary. Handlers map these to status
// codes; nothing below the transport layer knows about HTTP.
var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrNotFound          = errors.New("not found")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrInvalidToken      = errors.New("invalid token")
)

// GatewayError reports a failed call to the completion API. Status and Body
// carry the upstream response when one was received; both are zero on
// transport errors such as timeouts. The API key is never included.
type GatewayError struct {
	Status int
	Body   string
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("completion gateway error [%d]: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("completion gateway error: %v", e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
