package mockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestSeed(t *testing.T) {
	posts := DefaultSeed()
	require.Len(t, posts, 100)
	for i, p := range posts {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, i/10+1, p.UserID)
	}
}

func TestListPosts(t *testing.T) {
	rr := do(t, NewRouter(), http.MethodGet, "/posts", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var posts []Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	assert.Len(t, posts, 100)
	assert.Equal(t, 1, posts[0].ID)
}

func TestListPosts_ByUser(t *testing.T) {
	h := NewRouter()
	rr := do(t, h, http.MethodGet, "/posts?userId=3", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var posts []Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	require.Len(t, posts, 10)
	for _, p := range posts {
		assert.Equal(t, 3, p.UserID)
	}

	rr = do(t, h, http.MethodGet, "/posts?userId=nope", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetPost(t *testing.T) {
	h := NewRouter()
	rr := do(t, h, http.MethodGet, "/posts/7", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var p Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, 7, p.ID)

	rr = do(t, h, http.MethodGet, "/posts/999", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}

func TestCreatePost_EchoesWithoutStoring(t *testing.T) {
	h := NewRouter()
	rr := do(t, h, http.MethodPost, "/posts", `{"userId":1,"title":"t","body":"b"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var p Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, Post{ID: 101, UserID: 1, Title: "t", Body: "b"}, p)

	rr = do(t, h, http.MethodGet, "/posts/101", "")
	assert.Equal(t, http.StatusNotFound, rr.Code, "created posts are not persisted")

	rr = do(t, h, http.MethodPost, "/posts", `{bad`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdatePost(t *testing.T) {
	h := NewRouter()
	rr := do(t, h, http.MethodPut, "/posts/3", `{"id":3,"userId":1,"title":"new","body":"b"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var p Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, "new", p.Title)

	rr = do(t, h, http.MethodGet, "/posts/3", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.NotEqual(t, "new", p.Title, "updates are not persisted")

	rr = do(t, h, http.MethodPut, "/posts/999", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	var e ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	assert.Equal(t, "post 999 not found", e.Message)
}

func TestDeletePost(t *testing.T) {
	h := NewRouter()
	rr := do(t, h, http.MethodDelete, "/posts/5", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/posts/5", "")
	assert.Equal(t, http.StatusOK, rr.Code, "deletes are not persisted")

	rr = do(t, h, http.MethodDelete, "/posts/999", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUnknownRoute(t *testing.T) {
	rr := do(t, NewRouter(), http.MethodGet, "/comments", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRecoverPanics(t *testing.T) {
	var buf bytes.Buffer
	h := recoverPanics(zerolog.New(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestWithLatency(t *testing.T) {
	srv := httptest.NewServer(NewRouter(WithLatency(50 * time.Millisecond)))
	defer srv.Close()

	start := time.Now()
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, addr, NewRouter(), zerolog.Nop()) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
