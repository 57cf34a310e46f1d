package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PostHandler serves the /posts resource from an immutable seed.
type PostHandler struct {
	posts []Post
	byID  map[int]Post
}

// NewPostHandler indexes posts. The slice order is the list order.
func NewPostHandler(posts []Post) *PostHandler {
	byID := make(map[int]Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	return &PostHandler{posts: posts, byID: byID}
}

// ListPosts GET /posts[?userId=N]
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		writeJSON(w, http.StatusOK, h.posts)
		return
	}
	out := []Post{}
	if userID, err := strconv.Atoi(raw); err == nil {
		for _, p := range h.posts {
			if p.UserID == userID {
				out = append(out, p)
			}
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// GetPost GET /posts/{id}
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	p, ok := h.lookup(r)
	if !ok {
		writeEmpty(w, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePost POST /posts. The post is echoed with the next id but not stored.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req Post
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.ID = len(h.posts) + 1
	writeJSON(w, http.StatusCreated, req)
}

// UpdatePost PUT /posts/{id}. The replacement is echoed but not stored.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, ok := h.byID[id]; !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("post %d not found", id))
		return
	}
	var req Post
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	req.ID = id
	writeJSON(w, http.StatusOK, req)
}

// DeletePost DELETE /posts/{id}. Nothing is removed from the seed.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.lookup(r); !ok {
		writeEmpty(w, http.StatusNotFound)
		return
	}
	writeEmpty(w, http.StatusOK)
}

// Health GET /health
func (h *PostHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "posts": len(h.posts)})
}

func (h *PostHandler) lookup(r *http.Request) (Post, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return Post{}, false
	}
	p, ok := h.byID[id]
	return p, ok
}
