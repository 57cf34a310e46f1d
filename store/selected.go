package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/aebonlee/blog-test-2/client"
)

// PostGetter is the subset of *client.Client the single-item unit drives.
type PostGetter interface {
	GetByID(ctx context.Context, id int) (*client.Post, error)
}

// SelectedState is a snapshot of the single-item unit. Post is nil when
// nothing is selected; an empty Error means no error.
type SelectedState struct {
	Post    *client.Post
	Loading bool
	Error   string
}

// HasError reports whether the last fetch left a message.
func (s SelectedState) HasError() bool { return s.Error != "" }

func cloneSelectedState(s SelectedState) SelectedState {
	if s.Post != nil {
		p := *s.Post
		s.Post = &p
	}
	return s
}

// Selected is the single-item unit.
type Selected struct {
	api    PostGetter
	logger zerolog.Logger
	cell   *cell[SelectedState]
}

// NewSelected returns an empty, idle single-item unit backed by api.
func NewSelected(api PostGetter, opts ...Option) *Selected {
	o := applyOptions("selected-store", opts)
	return &Selected{
		api:    api,
		logger: o.logger,
		cell:   newCell(SelectedState{}, cloneSelectedState),
	}
}

// Snapshot returns a copy of the current state.
func (s *Selected) Snapshot() SelectedState { return s.cell.snapshot() }

// Subscribe registers fn to receive every new state.
func (s *Selected) Subscribe(fn func(SelectedState)) (unsubscribe func()) {
	return s.cell.subscribe(fn)
}

// FetchOne loads post id. On failure the previous selection is kept and
// Error is set. Loading is false when it returns.
func (s *Selected) FetchOne(ctx context.Context, id int) {
	s.cell.update(func(st *SelectedState) {
		st.Loading = true
		st.Error = ""
	})
	defer s.cell.update(func(st *SelectedState) { st.Loading = false })

	post, err := s.api.GetByID(ctx, id)
	if err != nil {
		msg := MessageFor(err, MsgFetchPost)
		s.logger.Error().Err(err).Int("id", id).Str("user_message", msg).Msg("Single post API error")
		s.cell.update(func(st *SelectedState) { st.Error = msg })
		return
	}
	s.cell.update(func(st *SelectedState) { st.Post = post })
}

// Clear drops the selection and the error. Loading is left as is.
func (s *Selected) Clear() {
	s.cell.update(func(st *SelectedState) {
		st.Post = nil
		st.Error = ""
	})
}
