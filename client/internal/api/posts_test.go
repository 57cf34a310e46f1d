package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/aebonlee/blog-test-2/client/internal/errors"
	"github.com/aebonlee/blog-test-2/client/internal/transport"
	"github.com/aebonlee/blog-test-2/client/internal/types"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

func handlerFor(baseURL string) transport.Handler {
	rc := resty.New().SetBaseURL(baseURL).SetHeader("Content-Type", "application/json")
	return transport.Chain(transport.NewRestyHandler(rc), transport.NormalizeErrors())
}

func samplePosts(n int) []types.Post {
	out := make([]types.Post, n)
	for i := range out {
		out[i] = types.Post{ID: i + 1, UserID: i/10 + 1, Title: fmt.Sprintf("title %d", i+1), Body: "body"}
	}
	return out
}

func TestListPosts_TruncatesInOrder(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(samplePosts(100))
	}))
	defer srv.Close()
	got, err := ListPosts(context.Background(), handlerFor(srv.URL))
	if err != nil {
		t.Fatalf("ListPosts error: %v", err)
	}
	if len(got) != ListLimit {
		t.Fatalf("expected %d posts, got %d", ListLimit, len(got))
	}
	for i, p := range got {
		if p.ID != i+1 {
			t.Fatalf("position %d holds id %d", i, p.ID)
		}
	}
}

func TestListPosts_ShortListUntouched(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(samplePosts(3))
	}))
	defer srv.Close()
	got, err := ListPosts(context.Background(), handlerFor(srv.URL))
	if err != nil || len(got) != 3 {
		t.Fatalf("ListPosts unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	_, err := GetPost(context.Background(), handlerFor(srv.URL), 999)
	e, ok := apierrors.As(err)
	if !ok || e.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestGetPost_InvalidID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	for _, id := range []int{0, -3} {
		if _, err := GetPost(context.Background(), handlerFor(srv.URL), id); !errors.Is(err, types.ErrInvalidArgument) {
			t.Fatalf("id %d: expected ErrInvalidArgument, got %v", id, err)
		}
	}
}

func TestCreatePost_EchoesWithServerID(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/posts" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var d types.PostDraft
		_ = json.NewDecoder(r.Body).Decode(&d)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(d.WithID(101))
	}))
	defer srv.Close()
	got, err := CreatePost(context.Background(), handlerFor(srv.URL), types.PostDraft{UserID: 1, Title: "t", Body: "b"})
	if err != nil || got.ID != 101 || got.Title != "t" {
		t.Fatalf("CreatePost unexpected: got=%+v err=%v", got, err)
	}
}

func TestUpdatePost_SendsFullRecord(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/posts/4" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b, _ := io.ReadAll(r.Body)
		var p types.Post
		if err := json.Unmarshal(b, &p); err != nil || p.ID != 4 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write(b)
	}))
	defer srv.Close()
	got, err := UpdatePost(context.Background(), handlerFor(srv.URL), 4, types.PostDraft{UserID: 1, Title: "new", Body: "b"})
	if err != nil || got.ID != 4 || got.Title != "new" {
		t.Fatalf("UpdatePost unexpected: got=%+v err=%v", got, err)
	}
}

func TestDeletePost(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Path == "/posts/5" {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	h := handlerFor(srv.URL)
	if err := DeletePost(context.Background(), h, 5); err != nil {
		t.Fatalf("DeletePost error: %v", err)
	}
	err := DeletePost(context.Background(), h, 999)
	if e, ok := apierrors.As(err); !ok || e.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for missing post, got %v", err)
	}
}

func TestListPostsByUser_Query(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("userId") != "2" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(samplePosts(20)[10:])
	}))
	defer srv.Close()
	got, err := ListPostsByUser(context.Background(), handlerFor(srv.URL), 2)
	if err != nil || len(got) != 10 || got[0].UserID != 2 {
		t.Fatalf("ListPostsByUser unexpected: got=%+v err=%v", got, err)
	}
}

func TestPosts_DecodeErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{bad json"))
	}))
	defer srv.Close()
	_, err := ListPosts(context.Background(), handlerFor(srv.URL))
	e, ok := apierrors.As(err)
	if !ok || e.Kind != apierrors.KindUnknown || e.Message != apierrors.UnknownMessage {
		t.Fatalf("expected unknown error, got %v", err)
	}
}

func TestPosts_HTTPDoError(t *testing.T) {
	t.Parallel()
	rc := resty.New().SetBaseURL("http://example.com").SetTransport(&errRT{})
	h := transport.Chain(transport.NewRestyHandler(rc), transport.NormalizeErrors())
	if _, err := ListPosts(context.Background(), h); err == nil {
		t.Fatal("expected Do error for ListPosts")
	}
	if _, err := GetPost(context.Background(), h, 1); err == nil {
		t.Fatal("expected Do error for GetPost")
	}
	if err := DeletePost(context.Background(), h, 1); err == nil {
		t.Fatal("expected Do error for DeletePost")
	}
}

func TestListPosts_CtxCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dummy := httptest.NewServer(http.NotFoundHandler())
	defer dummy.Close()
	if _, err := ListPosts(ctx, handlerFor(dummy.URL)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
