package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options are applied after the base URL, timeout and default headers are set
// and before the interceptor chain is assembled.
type Option func(*Client) error

// WithHTTPTimeout overrides the per-call timeout. The value must be greater
// than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.timeout = d
		c.rc.SetTimeout(d)
		return nil
	}
}

// WithHeader adds a default header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) error {
		if key == "" {
			return fmt.Errorf("header key must not be empty")
		}
		c.rc.SetHeader(key, value)
		return nil
	}
}

// WithLogger replaces the logger used by the request/response interceptors.
// Pass zerolog.Nop() to silence them.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// WithRetry enables retries of recoverable failures (network errors, 408,
// 429, 5xx) with exponential backoff. maxAttempts counts the first attempt;
// 1 disables retries, which is the default.
func WithRetry(maxAttempts int, initial, maxInterval time.Duration) Option {
	return func(c *Client) error {
		if maxAttempts < 1 {
			return fmt.Errorf("retry attempts must be >= 1")
		}
		if initial <= 0 || maxInterval < initial {
			return fmt.Errorf("invalid retry intervals: initial=%s max=%s", initial, maxInterval)
		}
		c.retry.MaxAttempts = maxAttempts
		c.retry.InitialInterval = initial
		c.retry.MaxInterval = maxInterval
		return nil
	}
}

// WithRegisterer registers the client's metrics against reg instead of the
// default Prometheus registerer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) error {
		m, err := newMetrics(reg)
		if err != nil {
			return err
		}
		c.metrics = m
		return nil
	}
}

// WithTransport replaces the underlying http.RoundTripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		if rt == nil {
			return fmt.Errorf("transport must not be nil")
		}
		c.rc.SetTransport(rt)
		return nil
	}
}

// WithDebugLogging wraps the transport so full request/response dumps are
// logged when enabled is true.
//
// Do not enable this option in production environments as it increases
// verbosity and dumps bodies and headers.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, ok := c.rc.GetClient().Transport.(*debugTransport); ok {
			return nil
		}
		base := c.rc.GetClient().Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.rc.SetTransport(&debugTransport{base: base, owner: c})
		return nil
	}
}
