package store

import (
	"context"
	"errors"

	"github.com/aebonlee/blog-test-2/client"
)

// User-facing messages.
const (
	MsgNetwork    = "Please check your network connection."
	MsgTimeout    = "The request timed out."
	MsgFetchPosts = "Failed to load posts."
	MsgFetchPost  = "Failed to load the post."
	MsgCreatePost = "Failed to create post."
	MsgUpdatePost = "Failed to update post."
	MsgDeletePost = "Failed to delete post."
)

// MessageFor resolves the user-facing message for err, as stored in a unit's Error field.
// Network failures map to fixed messages; everything else keeps the
// client's normalized message, falling back to fallback when empty.
func MessageFor(err error, fallback string) string {
	if e, ok := client.AsError(err); ok {
		if e.Kind == client.KindNetwork {
			if e.Timeout() {
				return MsgTimeout
			}
			return MsgNetwork
		}
		if e.Message != "" {
			return e.Message
		}
		return fallback
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return MsgTimeout
	}
	if m := err.Error(); m != "" {
		return m
	}
	return fallback
}
