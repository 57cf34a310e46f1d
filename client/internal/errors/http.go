package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

// getHTTPErrorCategory maps HTTP status codes to error categories.
func getHTTPErrorCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Irrecoverable
	}
}

// ResolveMessage picks the message shown for a failure: the remote body's
// message, then the cause's own text, then UnknownMessage.
func ResolveMessage(bodyMessage string, cause error) string {
	if m := strings.TrimSpace(bodyMessage); m != "" {
		return m
	}
	if cause != nil {
		if m := strings.TrimSpace(cause.Error()); m != "" {
			return m
		}
	}
	return UnknownMessage
}

// bodyMessage extracts a top-level "message" string from a JSON error body.
// Non-JSON bodies and bodies without the field yield "".
func bodyMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var envelope struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if s, ok := envelope.Message.(string); ok {
		return s
	}
	return ""
}

// NewHTTPError creates the error for a response with a non-2xx status.
func NewHTTPError(op, method, path string, statusCode int, body []byte) *Error {
	cause := fmt.Errorf("request failed with status code %d", statusCode)
	return &Error{
		Kind:       KindHTTP,
		Op:         op,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Message:    ResolveMessage(bodyMessage(body), cause),
		Body:       string(body),
		Err:        cause,
	}
}

// NewNetworkError creates the error for a call that received no response.
func NewNetworkError(op, method, path string, err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Op:      op,
		Method:  method,
		Path:    path,
		Message: ResolveMessage("", err),
		Err:     err,
	}
}

// NewUnknownError wraps a failure that fits neither of the other kinds.
func NewUnknownError(op, method, path string, err error) *Error {
	return &Error{
		Kind:    KindUnknown,
		Op:      op,
		Method:  method,
		Path:    path,
		Message: UnknownMessage,
		Err:     err,
	}
}
