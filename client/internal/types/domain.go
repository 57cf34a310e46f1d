package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Post is a blog post as served by the posts API. ID is assigned by the server.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// ------------------------------
// Request Types
// ------------------------------

// PostDraft holds the client-supplied fields of a post. It is the payload of
// create and, together with an id, the full replacement of update.
type PostDraft struct {
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// WithID returns the full record the draft describes for the given id.
func (d PostDraft) WithID(id int) Post {
	return Post{ID: id, UserID: d.UserID, Title: d.Title, Body: d.Body}
}

// ------------------------------
// Response Types
// ------------------------------

// ErrorBody is the optional JSON error envelope returned by the API.
// Only Message is used for normalization; the rest is kept for debugging.
type ErrorBody struct {
	Error   string `json:"error,omitempty"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
