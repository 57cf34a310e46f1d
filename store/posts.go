package store

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"github.com/aebonlee/blog-test-2/client"
)

// PostsAPI is the subset of *client.Client the collection unit drives.
type PostsAPI interface {
	List(ctx context.Context) ([]client.Post, error)
	Create(ctx context.Context, draft client.PostDraft) (*client.Post, error)
	Update(ctx context.Context, id int, draft client.PostDraft) (*client.Post, error)
	DeleteByID(ctx context.Context, id int) error
}

// PostsState is a snapshot of the collection unit. An empty Error means no error.
type PostsState struct {
	Items   []client.Post
	Loading bool
	Error   string
}

// HasError reports whether the last failing operation left a message.
func (s PostsState) HasError() bool { return s.Error != "" }

func clonePostsState(s PostsState) PostsState {
	s.Items = slices.Clone(s.Items)
	return s
}

// Posts is the collection unit: the first page of posts plus loading and
// error flags. It starts empty and idle.
type Posts struct {
	api    PostsAPI
	logger zerolog.Logger
	cell   *cell[PostsState]
}

// NewPosts returns an empty, idle collection unit backed by api.
func NewPosts(api PostsAPI, opts ...Option) *Posts {
	o := applyOptions("posts-store", opts)
	return &Posts{
		api:    api,
		logger: o.logger,
		cell:   newCell(PostsState{Items: []client.Post{}}, clonePostsState),
	}
}

// Snapshot returns a copy of the current state.
func (p *Posts) Snapshot() PostsState { return p.cell.snapshot() }

// Subscribe registers fn to receive every new state. The returned function
// removes the registration.
func (p *Posts) Subscribe(fn func(PostsState)) (unsubscribe func()) {
	return p.cell.subscribe(fn)
}

// Refresh reloads the list. On success Items is replaced wholesale; on
// failure Items is kept and Error is set. Loading is false when it returns.
func (p *Posts) Refresh(ctx context.Context) {
	p.cell.update(func(s *PostsState) {
		s.Loading = true
		s.Error = ""
	})
	defer p.cell.update(func(s *PostsState) { s.Loading = false })

	items, err := p.api.List(ctx)
	if err != nil {
		p.fail("refresh", err, MsgFetchPosts)
		return
	}
	if items == nil {
		items = []client.Post{}
	}
	p.cell.update(func(s *PostsState) { s.Items = items })
}

// Create submits draft. Items is not changed because the backend does not
// persist writes; the echoed post is returned for confirmation.
func (p *Posts) Create(ctx context.Context, draft client.PostDraft) Outcome[client.Post] {
	post, err := p.api.Create(ctx, draft)
	if err != nil {
		return failed[client.Post](p.fail("create", err, MsgCreatePost))
	}
	p.logger.Info().Int("id", post.ID).Msg("post created")
	return succeeded(*post)
}

// Update replaces post id with draft on the server. Items is not changed.
func (p *Posts) Update(ctx context.Context, id int, draft client.PostDraft) Outcome[client.Post] {
	post, err := p.api.Update(ctx, id, draft)
	if err != nil {
		return failed[client.Post](p.fail("update", err, MsgUpdatePost))
	}
	p.logger.Info().Int("id", post.ID).Msg("post updated")
	return succeeded(*post)
}

// Remove deletes post id on the server and, on success, drops it from Items.
// On failure Items is unchanged and Error is set.
func (p *Posts) Remove(ctx context.Context, id int) Outcome[struct{}] {
	if err := p.api.DeleteByID(ctx, id); err != nil {
		return failed[struct{}](p.fail("remove", err, MsgDeletePost))
	}
	p.cell.update(func(s *PostsState) {
		s.Items = slices.DeleteFunc(slices.Clone(s.Items), func(q client.Post) bool { return q.ID == id })
	})
	p.logger.Info().Int("id", id).Msg("post deleted")
	return succeeded(struct{}{})
}

// ClearError dismisses the current error without retrying.
func (p *Posts) ClearError() {
	p.cell.update(func(s *PostsState) { s.Error = "" })
}

// fail records err in the unit's state and returns the stored message.
func (p *Posts) fail(op string, err error, fallback string) string {
	msg := MessageFor(err, fallback)
	p.logger.Error().Err(err).Str("op", op).Str("user_message", msg).Msg("Blog API error")
	p.cell.update(func(s *PostsState) { s.Error = msg })
	return msg
}
