// Package errors defines the single error shape produced by the posts client
// and the recoverability classification used by the retry interceptor.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
)

// UnknownMessage is the last-resort message when nothing better is available.
const UnknownMessage = "unknown error occurred"

// Kind tells where a failure came from.
type Kind int

const (
	// KindUnknown covers anything that is neither a transport nor an HTTP failure,
	// for example an undecodable success body.
	KindUnknown Kind = iota

	// KindNetwork means no response was received (DNS, refused connection, timeout).
	KindNetwork

	// KindHTTP means a response was received with a non-2xx status.
	KindHTTP
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "NetworkError"
	case KindHTTP:
		return "HttpError"
	case KindUnknown:
		return "UnknownError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may be retried with exponential backoff.
	// Examples: 500 Internal Server Error, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors should fail immediately without retry.
	// Examples: 400 Bad Request, 404 Not Found, undecodable bodies.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Error is the normalized failure of a single API call.
type Error struct {
	Kind       Kind
	Op         string // logical operation, e.g. "list posts"
	Method     string
	Path       string
	StatusCode int    // 0 when no response was received
	Message    string // resolved human-readable message, never empty
	Body       string // raw response body, for debugging
	Err        error  // underlying cause, may be nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := e.Op
	if prefix == "" {
		prefix = fmt.Sprintf("%s %s", e.Method, e.Path)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", prefix, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was caused by a deadline.
func (e *Error) Timeout() bool {
	if e.Kind != KindNetwork || e.Err == nil {
		return false
	}
	if stderrors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return stderrors.As(e.Err, &ne) && ne.Timeout()
}

// Category classifies the error for retry purposes.
func (e *Error) Category() ErrorCategory {
	switch e.Kind {
	case KindNetwork:
		if stderrors.Is(e.Err, context.Canceled) {
			return Irrecoverable
		}
		return Recoverable
	case KindHTTP:
		return getHTTPErrorCategory(e.StatusCode)
	default:
		return Irrecoverable
	}
}

// As extracts *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsIrrecoverable returns true if the error should not be retried.
// Errors that are not *Error are treated as irrecoverable.
func IsIrrecoverable(err error) bool {
	if e, ok := As(err); ok {
		return e.Category() == Irrecoverable
	}
	return true
}
