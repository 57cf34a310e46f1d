package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aebonlee/blog-test-2/client"
	"github.com/aebonlee/blog-test-2/internal/config"
	"github.com/aebonlee/blog-test-2/internal/logger"
	"github.com/aebonlee/blog-test-2/internal/mockapi"
	"github.com/aebonlee/blog-test-2/store"
)

// previewLength caps post bodies in list output.
const previewLength = 100

var (
	apiURL  string
	debug   bool
	timeout time.Duration

	cfg *config.Config
)

// failure is a user-facing error message; main prints it with a retry hint.
type failure struct{ msg string }

func (f *failure) Error() string { return f.msg }

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		var f *failure
		if errors.As(err, &f) {
			fmt.Fprintf(os.Stderr, "Error: %s\nRun the command again to retry.\n", f.msg)
		} else {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "postboard",
		Short:         "Postboard lists and edits blog posts through the posts API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if apiURL != "" {
				loaded.APIBaseURL = apiURL
			}
			if timeout > 0 {
				loaded.APITimeout = timeout
			}
			if debug {
				loaded.LogLevel = "debug"
			}
			if err := loaded.Validate(); err != nil {
				return err
			}
			loaded.Init()
			cfg = loaded
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the posts API (overrides API_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging with full HTTP dumps")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-call timeout (overrides API_TIMEOUT)")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newByUserCmd())
	rootCmd.AddCommand(newServeMockCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newClient() (*client.Client, error) {
	opts := append(cfg.ClientOptions(), client.WithDebugLogging(debug))
	return client.New(cfg.ClientConfig(), opts...)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the first posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			posts := store.NewPosts(c)
			posts.Refresh(cmd.Context())

			state := posts.Snapshot()
			if state.HasError() {
				return &failure{msg: state.Error}
			}
			out := cmd.OutOrStdout()
			if len(state.Items) == 0 {
				fmt.Fprintln(out, "No posts.")
				return nil
			}
			for _, p := range state.Items {
				fmt.Fprintf(out, "#%d [user %d] %s\n    %s\n", p.ID, p.UserID, p.Title, preview(p.Body))
			}
			return nil
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			selected := store.NewSelected(c)
			selected.FetchOne(cmd.Context(), id)

			state := selected.Snapshot()
			if state.HasError() {
				return &failure{msg: state.Error}
			}
			printPost(cmd, state.Post)
			return nil
		},
	}
}

func newCreateCmd() *cobra.Command {
	var draft client.PostDraft

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			res := store.NewPosts(c).Create(cmd.Context(), draft)
			if !res.Success {
				return &failure{msg: res.Message}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Post created: #%d - %s\n", res.Data.ID, res.Data.Title)
			return nil
		},
	}

	cmd.Flags().IntVar(&draft.UserID, "user-id", 1, "Author id")
	cmd.Flags().StringVar(&draft.Title, "title", "", "Post title (required)")
	cmd.Flags().StringVar(&draft.Body, "body", "", "Post body")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newUpdateCmd() *cobra.Command {
	var draft client.PostDraft

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an existing post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			res := store.NewPosts(c).Update(cmd.Context(), id, draft)
			if !res.Success {
				return &failure{msg: res.Message}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Post updated: #%d - %s\n", res.Data.ID, res.Data.Title)
			return nil
		},
	}

	cmd.Flags().IntVar(&draft.UserID, "user-id", 1, "Author id")
	cmd.Flags().StringVar(&draft.Title, "title", "", "Post title (required)")
	cmd.Flags().StringVar(&draft.Body, "body", "", "Post body")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			res := store.NewPosts(c).Remove(cmd.Context(), id)
			if !res.Success {
				return &failure{msg: res.Message}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Post #%d deleted\n", id)
			return nil
		},
	}
}

func newByUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-user <userId>",
		Short: "List every post of one author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			posts, err := c.ListByUser(cmd.Context(), userID)
			if err != nil {
				return &failure{msg: store.MessageFor(err, store.MsgFetchPosts)}
			}
			out := cmd.OutOrStdout()
			for _, p := range posts {
				fmt.Fprintf(out, "#%d %s\n    %s\n", p.ID, p.Title, preview(p.Body))
			}
			fmt.Fprintf(out, "%d posts by user %d\n", len(posts), userID)
			return nil
		},
	}
}

func newServeMockCmd() *cobra.Command {
	var addr string
	var latency time.Duration

	cmd := &cobra.Command{
		Use:   "serve-mock",
		Short: "Run the in-memory demo posts API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.MockAPIAddr
			}
			l := logger.New(cfg.AppName + "-mock")
			if debug {
				l = l.Level(zerolog.DebugLevel)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			router := mockapi.NewRouter(mockapi.WithLogger(l), mockapi.WithLatency(latency))
			return mockapi.Serve(ctx, addr, router, l)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides MOCK_API_ADDR)")
	cmd.Flags().DurationVar(&latency, "latency", 0, "Artificial delay added to every response")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application name and version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.AppName, cfg.AppVersion)
			return nil
		},
	}
}

func printPost(cmd *cobra.Command, p *client.Post) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "#%d by user %d\n%s\n\n%s\n", p.ID, p.UserID, p.Title, p.Body)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}

// preview shortens body to previewLength runes.
func preview(body string) string {
	r := []rune(body)
	if len(r) <= previewLength {
		return body
	}
	return string(r[:previewLength]) + "..."
}
