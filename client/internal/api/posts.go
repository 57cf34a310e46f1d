package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apierrors "github.com/aebonlee/blog-test-2/client/internal/errors"
	"github.com/aebonlee/blog-test-2/client/internal/transport"
	"github.com/aebonlee/blog-test-2/client/internal/types"
)

// ListLimit caps the number of posts returned by ListPosts.
const ListLimit = 10

// ListPosts returns the first ListLimit posts in the order the server sent them.
func ListPosts(ctx context.Context, h transport.Handler) ([]types.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	call := &transport.Call{Op: "list posts", Method: http.MethodGet, Path: "/posts"}
	var posts []types.Post
	if err := do(ctx, h, call, &posts); err != nil {
		return nil, err
	}
	if len(posts) > ListLimit {
		posts = posts[:ListLimit]
	}
	return posts, nil
}

// GetPost retrieves a single post.
func GetPost(ctx context.Context, h transport.Handler, id int) (*types.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidatePositiveID(id, "id"); err != nil {
		return nil, err
	}
	call := &transport.Call{Op: "get post", Method: http.MethodGet, Path: postPath(id)}
	var post types.Post
	if err := do(ctx, h, call, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost submits a new post and returns the server's echo, which carries
// the server-assigned id.
func CreatePost(ctx context.Context, h transport.Handler, draft types.PostDraft) (*types.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	call := &transport.Call{Op: "create post", Method: http.MethodPost, Path: "/posts", Body: draft}
	var post types.Post
	if err := do(ctx, h, call, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost replaces the post with the given id and returns the server's echo.
func UpdatePost(ctx context.Context, h transport.Handler, id int, draft types.PostDraft) (*types.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidatePositiveID(id, "id"); err != nil {
		return nil, err
	}
	call := &transport.Call{Op: "update post", Method: http.MethodPut, Path: postPath(id), Body: draft.WithID(id)}
	var post types.Post
	if err := do(ctx, h, call, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost deletes the post with the given id. The response body is ignored.
func DeletePost(ctx context.Context, h transport.Handler, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidatePositiveID(id, "id"); err != nil {
		return err
	}
	call := &transport.Call{Op: "delete post", Method: http.MethodDelete, Path: postPath(id)}
	return do(ctx, h, call, nil)
}

// ListPostsByUser returns every post of a user, filtered server-side.
func ListPostsByUser(ctx context.Context, h transport.Handler, userID int) ([]types.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidatePositiveID(userID, "userId"); err != nil {
		return nil, err
	}
	call := &transport.Call{
		Op:     "list posts by user",
		Method: http.MethodGet,
		Path:   "/posts",
		Query:  url.Values{"userId": []string{strconv.Itoa(userID)}},
	}
	var posts []types.Post
	if err := do(ctx, h, call, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func postPath(id int) string {
	return fmt.Sprintf("/posts/%d", id)
}

// do runs call through h and decodes a successful body into out (when non-nil).
func do(ctx context.Context, h transport.Handler, call *transport.Call, out any) error {
	res, err := h(ctx, call)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		return apierrors.NewUnknownError(call.Op, call.Method, call.Path, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
