package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/aebonlee/blog-test-2/client"
)

// fakeAPI is an in-process PostsAPI/PostGetter with scripted failures.
type fakeAPI struct {
	mu       sync.Mutex
	posts    []client.Post
	listErr  error
	getErr   error
	writeErr error
	delErr   error
	deleted  []int
}

func seeded(n int) []client.Post {
	out := make([]client.Post, n)
	for i := range out {
		out[i] = client.Post{ID: i + 1, UserID: i/10 + 1, Title: fmt.Sprintf("post %d", i+1), Body: "body"}
	}
	return out
}

func (f *fakeAPI) List(context.Context) ([]client.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]client.Post(nil), f.posts...), nil
}

func (f *fakeAPI) GetByID(_ context.Context, id int) (*client.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, p := range f.posts {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, fmt.Errorf("post %d not found", id)
}

func (f *fakeAPI) Create(_ context.Context, d client.PostDraft) (*client.Post, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	p := d.WithID(101)
	return &p, nil
}

func (f *fakeAPI) Update(_ context.Context, id int, d client.PostDraft) (*client.Post, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	p := d.WithID(id)
	return &p, nil
}

func (f *fakeAPI) DeleteByID(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}
