package transport

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apierrors "github.com/aebonlee/blog-test-2/client/internal/errors"
)

// LogRequest records method and path of every outgoing call. The call is
// forwarded unchanged apart from assigning a RequestID when missing.
func LogRequest(logger zerolog.Logger) Interceptor {
	return func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			if call.RequestID == "" {
				call.RequestID = uuid.NewString()
			}
			logger.Info().
				Str("request_id", call.RequestID).
				Str("op", call.Op).
				Str("method", call.Method).
				Str("path", call.Path).
				Msg("API request")
			return next(ctx, call)
		}
	}
}

// LogResponse records the status and path of a successful call, or the
// resolved message and status of a failed one. It never alters the outcome.
func LogResponse(logger zerolog.Logger) Interceptor {
	return func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			start := time.Now()
			res, err := next(ctx, call)
			elapsed := time.Since(start)
			if err != nil {
				ev := logger.Error().
					Err(err).
					Str("request_id", call.RequestID).
					Str("op", call.Op).
					Str("method", call.Method).
					Str("path", call.Path).
					Dur("elapsed", elapsed)
				if e, ok := apierrors.As(err); ok {
					ev = ev.Str("kind", e.Kind.String()).Int("status", e.StatusCode).Str("error_message", e.Message)
				}
				ev.Msg("API error")
				return nil, err
			}
			logger.Info().
				Str("request_id", call.RequestID).
				Int("status", res.StatusCode).
				Str("path", call.Path).
				Dur("elapsed", elapsed).
				Msg("API response")
			return res, nil
		}
	}
}

// NormalizeErrors turns transport failures and non-2xx responses into
// *apierrors.Error. Failures are always propagated.
func NormalizeErrors() Interceptor {
	return func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			res, err := next(ctx, call)
			if err != nil {
				if _, ok := apierrors.As(err); ok {
					return nil, err
				}
				return nil, apierrors.NewNetworkError(call.Op, call.Method, call.Path, err)
			}
			if !res.OK() {
				return nil, apierrors.NewHTTPError(call.Op, call.Method, call.Path, res.StatusCode, res.Body)
			}
			return res, nil
		}
	}
}

// RetryPolicy configures Retry. MaxAttempts <= 1 disables retries.
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Retry re-issues calls that failed with a recoverable error, waiting with
// exponential backoff between attempts. It must sit outside NormalizeErrors.
func Retry(policy RetryPolicy, logger zerolog.Logger) Interceptor {
	if policy.MaxAttempts <= 1 {
		return func(next Handler) Handler { return next }
	}
	return func(next Handler) Handler {
		return func(ctx context.Context, call *Call) (*Result, error) {
			exp := backoff.NewExponentialBackOff()
			exp.InitialInterval = policy.InitialInterval
			exp.Multiplier = 2
			exp.MaxInterval = policy.MaxInterval
			exp.MaxElapsedTime = 0
			exp.Reset()

			attempts := 0
			for {
				res, err := next(ctx, call)
				if err == nil || apierrors.IsIrrecoverable(err) || attempts >= policy.MaxAttempts-1 {
					return res, err
				}
				attempts++
				wait := exp.NextBackOff()
				logger.Warn().
					Err(err).
					Str("request_id", call.RequestID).
					Str("op", call.Op).
					Int("attempt", attempts+1).
					Dur("wait", wait).
					Msg("retrying API call")
				select {
				case <-time.After(wait):
				case <-ctx.Done():
					return nil, err
				}
			}
		}
	}
}
