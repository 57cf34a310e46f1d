package mockapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type options struct {
	posts   []Post
	latency time.Duration
	logger  zerolog.Logger
}

// Option configures NewRouter.
type Option func(*options)

// WithPosts replaces the default seed.
func WithPosts(posts []Post) Option { return func(o *options) { o.posts = posts } }

// WithLatency delays every response by d.
func WithLatency(d time.Duration) Option { return func(o *options) { o.latency = d } }

// WithLogger sets the access and panic logger.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

// NewRouter builds the demo API routes.
func NewRouter(opts ...Option) *mux.Router {
	o := options{posts: DefaultSeed(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	router := mux.NewRouter()
	router.Use(recoverPanics(o.logger), accessLog(o.logger))
	if o.latency > 0 {
		router.Use(delay(o.latency))
	}

	posts := NewPostHandler(o.posts)
	router.HandleFunc("/health", posts.Health).Methods(http.MethodGet)
	router.HandleFunc("/posts", posts.ListPosts).Methods(http.MethodGet)
	router.HandleFunc("/posts", posts.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/posts/{id:[0-9]+}", posts.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id:[0-9]+}", posts.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/posts/{id:[0-9]+}", posts.DeletePost).Methods(http.MethodDelete)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeEmpty(w, http.StatusNotFound)
	})
	return router
}
