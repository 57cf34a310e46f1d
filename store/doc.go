// Package store holds the client-side fetch state for posts.
//
// Two independent units are provided: Posts for the list view and Selected
// for a single post. Each unit owns an explicit state struct, guarded by a
// mutex, and exposes operations that drive a PostsAPI and translate every
// failure into observable state (an error message) or an Outcome. No
// operation returns an error or panics on API failure.
//
// Units do not queue or cancel work. Two overlapping calls on the same unit
// both run to completion and the response that arrives last wins; callers
// that care should not start a new call while Loading is true.
package store
