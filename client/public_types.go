package client

import (
	"github.com/aebonlee/blog-test-2/client/internal/transport"
	"github.com/aebonlee/blog-test-2/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Post      = types.Post
	PostDraft = types.PostDraft

	// Interceptor plumbing, exposed for tests and custom chains.
	Call        = transport.Call
	Result      = transport.Result
	Handler     = transport.Handler
	Interceptor = transport.Interceptor
)
