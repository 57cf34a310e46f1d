package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aebonlee/blog-test-2/client/internal/api"
	"github.com/aebonlee/blog-test-2/client/internal/transport"
)

const (
	// DefaultBaseURL is the public demo API used when no base URL is configured.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	// DefaultTimeout bounds every call unless overridden.
	DefaultTimeout = 10 * time.Second

	// ListLimit is the maximum number of posts returned by List.
	ListLimit = api.ListLimit
)

// Config is resolved once in New. Zero values fall back to the defaults above.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Headers are sent with every request in addition to
	// Content-Type: application/json.
	Headers map[string]string
}

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the posts API. It is immutable after New returns and safe
// for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	rc      *resty.Client
	logger  zerolog.Logger
	retry   transport.RetryPolicy
	metrics *metrics

	handler transport.Handler
}

// New constructs a Client from cfg. Additional options can be provided via
// functional arguments.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be > 0")
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		timeout: cfg.Timeout,
		logger:  log.Logger.With().Str("component", "posts-client").Logger(),
		metrics: defaultMetrics,
		retry: transport.RetryPolicy{
			MaxAttempts:     1,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     2 * time.Second,
		},
		rc: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetTimeout(cfg.Timeout).
			SetHeader("Content-Type", "application/json"),
	}
	for k, v := range cfg.Headers {
		c.rc.SetHeader(k, v)
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.rc.SetLogger(restyLogger{c.logger})

	c.handler = transport.Chain(
		transport.NewRestyHandler(c.rc),
		transport.LogRequest(c.logger),
		c.metrics.interceptor(),
		transport.LogResponse(c.logger),
		transport.Retry(c.retry, c.logger),
		transport.NormalizeErrors(),
	)
	return c, nil
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Timeout returns the per-call timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// --------------------------------------------------------------------
// Post operations - delegated to internal/api
// --------------------------------------------------------------------

// List returns the first ListLimit posts in server order.
func (c *Client) List(ctx context.Context) ([]Post, error) {
	return api.ListPosts(ctx, c.handler)
}

// GetByID retrieves a single post. A missing post yields an *Error with
// StatusCode 404.
func (c *Client) GetByID(ctx context.Context, id int) (*Post, error) {
	return api.GetPost(ctx, c.handler, id)
}

// Create submits draft and returns the server's echo. The demo backend
// assigns an id but does not persist the post.
func (c *Client) Create(ctx context.Context, draft PostDraft) (*Post, error) {
	return api.CreatePost(ctx, c.handler, draft)
}

// Update replaces the post with the given id and returns the server's echo.
func (c *Client) Update(ctx context.Context, id int, draft PostDraft) (*Post, error) {
	return api.UpdatePost(ctx, c.handler, id, draft)
}

// DeleteByID deletes the post with the given id.
func (c *Client) DeleteByID(ctx context.Context, id int) error {
	return api.DeletePost(ctx, c.handler, id)
}

// ListByUser returns the posts of one author, filtered server-side. The
// result is not truncated.
func (c *Client) ListByUser(ctx context.Context, userID int) ([]Post, error) {
	return api.ListPostsByUser(ctx, c.handler, userID)
}

// restyLogger routes resty's own diagnostics into zerolog.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...interface{})  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...interface{}) { r.l.Debug().Msgf(format, v...) }
