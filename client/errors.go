package client

import (
	"errors"

	apierrors "github.com/aebonlee/blog-test-2/client/internal/errors"
	"github.com/aebonlee/blog-test-2/client/internal/types"
)

// Error is the normalized failure returned by every Client operation that
// reached the transport.
type Error = apierrors.Error

// Kind classifies an Error.
type Kind = apierrors.Kind

const (
	KindUnknown = apierrors.KindUnknown
	KindNetwork = apierrors.KindNetwork
	KindHTTP    = apierrors.KindHTTP
)

// UnknownMessage is the message used when no better one can be resolved.
const UnknownMessage = apierrors.UnknownMessage

// ErrInvalidArgument is returned before any request is sent when an id is not
// a positive integer.
var ErrInvalidArgument = types.ErrInvalidArgument

// AsError extracts *Error from err's chain.
func AsError(err error) (*Error, bool) { return apierrors.As(err) }

// IsNetwork reports whether err is a failure where no response was received.
func IsNetwork(err error) bool { return isKind(err, KindNetwork) }

// IsHTTP reports whether err is a non-2xx response.
func IsHTTP(err error) bool { return isKind(err, KindHTTP) }

// IsTimeout reports whether err was caused by the call timeout or a context deadline.
func IsTimeout(err error) bool {
	e, ok := apierrors.As(err)
	return ok && e.Timeout()
}

// IsNotFound reports whether err is an HTTP 404.
func IsNotFound(err error) bool { return StatusCode(err) == 404 }

// StatusCode returns the HTTP status attached to err, or 0 when there is none.
func StatusCode(err error) int {
	if e, ok := apierrors.As(err); ok {
		return e.StatusCode
	}
	return 0
}

// Recoverable reports whether err is worth retrying.
func Recoverable(err error) bool {
	if err == nil || errors.Is(err, ErrInvalidArgument) {
		return false
	}
	return !apierrors.IsIrrecoverable(err)
}

func isKind(err error, k Kind) bool {
	e, ok := apierrors.As(err)
	return ok && e.Kind == k
}
