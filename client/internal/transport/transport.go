// Package transport composes the interceptor chain around the resty-backed
// core call. Interceptors are plain decorators over Handler.
package transport

import (
	"context"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// Call describes one outbound API request.
type Call struct {
	Op     string // logical operation, used in logs, metrics and errors
	Method string
	Path   string // relative to the configured base URL
	Query  url.Values
	Body   any // JSON-encoded by resty when non-nil

	// RequestID correlates the outgoing and incoming log lines. It is never
	// sent upstream.
	RequestID string
}

// Result is the raw outcome of a call that received a response.
type Result struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status is 2xx.
func (r *Result) OK() bool {
	return r != nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Handler performs a call.
type Handler func(ctx context.Context, call *Call) (*Result, error)

// Interceptor decorates a Handler with cross-cutting behaviour.
type Interceptor func(next Handler) Handler

// Chain wraps core so that interceptors[0] is the outermost layer.
func Chain(core Handler, interceptors ...Interceptor) Handler {
	h := core
	for i := len(interceptors) - 1; i >= 0; i-- {
		h = interceptors[i](h)
	}
	return h
}

// NewRestyHandler returns the core Handler. Base URL, timeout and default
// headers live on rc; a non-2xx status is not an error at this layer.
func NewRestyHandler(rc *resty.Client) Handler {
	return func(ctx context.Context, call *Call) (*Result, error) {
		req := rc.R().SetContext(ctx)
		if call.Body != nil {
			req.SetBody(call.Body)
		}
		if len(call.Query) > 0 {
			req.SetQueryParamsFromValues(call.Query)
		}
		resp, err := req.Execute(call.Method, call.Path)
		if err != nil {
			return nil, err
		}
		return &Result{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
	}
}
