package relay

import (
	"errors"
	"fmt"
)

// Define sentinel errors using errors.New to create immutable error instances
var (
	// ErrEmailEmpty indicates the operator email that addresses the relay is missing
	ErrEmailEmpty = errors.New("relay operator email not configured")

	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig = errors.New("invalid relay configuration")

	// ErrSendRequest indicates the HTTP request could not be completed
	ErrSendRequest = errors.New("failed to send relay request")

	// ErrHTTPStatusError indicates a non-success HTTP status
	ErrHTTPStatusError = errors.New("relay request failed")

	// ErrRejected indicates the relay answered but refused the submission
	ErrRejected = errors.New("relay rejected submission")

	// ErrUnreachable indicates the reachability probe failed
	ErrUnreachable = errors.New("relay unreachable")
)

// HTTPError represents a non-2xx answer from the relay
type HTTPError struct {
	StatusCode int
	Status     string
	Body       string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("relay request failed: %d %s, response: %s",
		e.StatusCode, e.Status, e.Body)
}

// Is lets errors.Is(err, ErrHTTPStatusError) match.
func (e *HTTPError) Is(target error) bool {
	return target == ErrHTTPStatusError
}

// RejectedError carries the message of a relay that answered 2xx with success=false
type RejectedError struct {
	Message string
}

// Error implements the error interface
func (e *RejectedError) Error() string {
	return fmt.Sprintf("relay rejected submission: %s", e.Message)
}

// Is lets errors.Is(err, ErrRejected) match.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}
