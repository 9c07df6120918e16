package board

import (
	"errors"
	"fmt"
)

// ErrNoCredentials is returned by ResolveContext when the configuration
// carries neither an access token nor a user id.
var ErrNoCredentials = errors.New("no usable credentials: set access_token or user_id")

// UpstreamError represents a failed call to the board service. It carries
// either the detail message reported by the service or the transport error.
type UpstreamError struct {
	Op     string
	Status int
	Detail string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Status > 0 {
		return fmt.Sprintf("%s: board API error (status %d): %s", e.Op, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstreamErr(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}
