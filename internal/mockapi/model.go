// Package mockapi is an in-memory stand-in for the public posts demo API.
// Reads are served from a fixed seed; writes are validated and echoed but
// never stored, matching the behaviour of the real demo backend.
package mockapi

import "fmt"

// Post mirrors the wire shape served by the demo API.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Seed returns users*perUser posts with ids 1..n, grouped by user in id order.
func Seed(users, perUser int) []Post {
	posts := make([]Post, 0, users*perUser)
	for u := 1; u <= users; u++ {
		for i := 1; i <= perUser; i++ {
			id := (u-1)*perUser + i
			posts = append(posts, Post{
				ID:     id,
				UserID: u,
				Title:  fmt.Sprintf("post %d by user %d", id, u),
				Body:   fmt.Sprintf("body of post %d, written by user %d for the demo feed", id, u),
			})
		}
	}
	return posts
}

// DefaultSeed matches the size of the public demo API: 10 users with 10 posts each.
func DefaultSeed() []Post { return Seed(10, 10) }
