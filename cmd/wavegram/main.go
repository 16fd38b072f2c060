// Package main provides the wavegram CLI entry point.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/twcoffee/wavegram/internal/auth"
	"github.com/twcoffee/wavegram/internal/backend"
	"github.com/twcoffee/wavegram/internal/compose"
	"github.com/twcoffee/wavegram/internal/config"
	"github.com/twcoffee/wavegram/internal/display"
	"github.com/twcoffee/wavegram/internal/domain/activity"
	"github.com/twcoffee/wavegram/internal/domain/feed"
	"github.com/twcoffee/wavegram/internal/domain/post"
	"github.com/twcoffee/wavegram/internal/domain/profile"
	"github.com/twcoffee/wavegram/internal/domain/unread"
	"github.com/twcoffee/wavegram/internal/realtime"
	"github.com/twcoffee/wavegram/internal/sqlite"
)

var version = "0.1.0"

func main() {
	// Best effort; a missing .env file is fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app bundles everything a subcommand needs. Built fresh per invocation.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	db       *sqlite.DB
	cache    *sqlite.TimelineCache
	sessions *auth.Manager
	tracker  *unread.Tracker
	posts    *post.Service
	activity *activity.Service
	profiles *profile.Service
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
}

// session returns the signed-in session, signing in from
// WAVEGRAM_ACCESS_TOKEN when no session is active yet.
func (a *app) session() (*auth.Session, error) {
	if session, err := a.sessions.Current(); err == nil {
		return session, nil
	}
	token := os.Getenv("WAVEGRAM_ACCESS_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("not signed in: set WAVEGRAM_ACCESS_TOKEN")
	}
	return a.sessions.SignIn(token)
}

func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureStoreDir(cfg.Store.Path); err != nil {
		return nil, fmt.Errorf("preparing store path: %w", err)
	}
	db, err := sqlite.New(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating local store: %w", err)
	}

	sessions := auth.NewManager()
	tracker, err := unread.NewTracker(ctx, sqlite.NewStore(db), logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("loading watermark: %w", err)
	}

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.APIKey, func() string {
		session, err := sessions.Current()
		if err != nil {
			return ""
		}
		return session.Token
	}, logger)

	postRepo := backend.NewPostRepository(client)
	likeRepo := backend.NewLikeRepository(client)
	commentRepo := backend.NewCommentRepository(client)
	shareRepo := backend.NewShareRepository(client)
	profileRepo := backend.NewProfileRepository(client)

	return &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		cache:    sqlite.NewTimelineCache(db),
		sessions: sessions,
		tracker:  tracker,
		posts:    post.NewService(postRepo, likeRepo, commentRepo, shareRepo, logger),
		activity: activity.NewService(postRepo, likeRepo, commentRepo, shareRepo, profileRepo, logger),
		profiles: profile.NewService(profileRepo, logger),
	}, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "wavegram",
		Short:   "Coffee community feed and activity client",
		Long:    "Wavegram is the terminal client for the coffee community feed: timeline, activity and unread tracking.",
		Version: version,
	}

	rootCmd.SetVersionTemplate("wavegram version {{.Version}}\n")

	rootCmd.AddCommand(newTimelineCmd())
	rootCmd.AddCommand(newActivityCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newBrewCmd())
	rootCmd.AddCommand(newBaristasCmd())

	return rootCmd
}

func newTimelineCmd() *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Display the brew timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			viewerID := ""
			if session, err := a.session(); err == nil {
				viewerID = session.UserID
			}

			formatter := display.NewTerminalFormatter()

			if offline {
				posts, cachedAt, err := a.cache.Load(ctx)
				if err != nil {
					return err
				}
				if len(posts) == 0 {
					return fmt.Errorf("no cached timeline yet")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cached %s\n\n", formatter.FormatTimestamp(cachedAt))
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(posts))
				return nil
			}

			posts, err := a.posts.Timeline(ctx, viewerID)
			if err != nil {
				// Fall back to the last cached timeline when the backend
				// is unreachable.
				cached, cachedAt, cacheErr := a.cache.Load(ctx)
				if cacheErr != nil || len(cached) == 0 {
					return err
				}
				a.logger.Warn("timeline fetch failed, serving cache", "error", err)
				fmt.Fprintf(cmd.OutOrStdout(), "Offline. Cached %s\n\n", formatter.FormatTimestamp(cachedAt))
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(cached))
				return nil
			}

			if err := a.cache.Save(ctx, posts); err != nil {
				a.logger.Warn("failed to cache timeline", "error", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTimeline(posts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "Show the last cached timeline without fetching")

	return cmd
}

func newActivityCmd() *cobra.Command {
	var markRead bool

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show who interacted with your brews",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			session, err := a.session()
			if err != nil {
				return err
			}

			entries, err := a.activity.Aggregate(ctx, session.UserID)
			if err != nil {
				return err
			}

			formatter := display.NewTerminalFormatter()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityFeed(entries, a.tracker.IsUnread))

			unreadCount := a.tracker.CountUnread(entries, false)
			if markRead {
				a.tracker.Advance(ctx, entries)
				fmt.Fprintf(cmd.OutOrStdout(), "\nMarked %d entries read.\n", unreadCount)
			} else if unreadCount > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d unread. Run with --read to mark them.\n", unreadCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&markRead, "read", false, "Advance the watermark past the shown entries")

	return cmd
}

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow activity live",
		Long:  "Keep the activity feed current: refresh on every backend change event and print the unread count as it moves.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			session, err := a.session()
			if err != nil {
				return err
			}

			rdb := redis.NewClient(&redis.Options{
				Addr:     a.cfg.Redis.Addr,
				Password: a.cfg.Redis.Password,
				DB:       a.cfg.Redis.DB,
			})
			defer rdb.Close()

			subscriber := realtime.NewSubscriber(rdb, a.cfg.Redis.ChannelPrefix, a.logger)
			events, err := subscriber.Changes(ctx,
				realtime.TableLikes, realtime.TableComments, realtime.TableShares, realtime.TablePosts)
			if err != nil {
				return fmt.Errorf("subscribing to changes: %w", err)
			}

			syncer := feed.NewSynchronizer(a.activity, a.tracker, session.UserID, a.logger)

			done := make(chan error, 1)
			go func() {
				done <- syncer.Run(ctx, events)
			}()

			formatter := display.NewTerminalFormatter()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			var lastUnread = -1
			for {
				select {
				case err := <-done:
					if err != nil && ctx.Err() == nil {
						return err
					}
					return nil
				case <-ticker.C:
					snapshot := syncer.Snapshot()
					if snapshot.UnreadCount == lastUnread {
						continue
					}
					lastUnread = snapshot.UnreadCount
					fmt.Fprintf(cmd.OutOrStdout(), "-- %d unread --\n", snapshot.UnreadCount)
					fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityFeed(snapshot.Entries, a.tracker.IsUnread))
				}
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "How often to check for snapshot changes")

	return cmd
}

func newBrewCmd() *cobra.Command {
	var topic string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "brew",
		Short: "Draft and publish a post",
		Long:  "Draft post copy for a topic with the AI composer, then publish it to the timeline.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			session, err := a.session()
			if err != nil {
				return err
			}

			if a.cfg.AI.APIKey == "" {
				return fmt.Errorf("AI composer requires WAVEGRAM_AI_KEY")
			}
			composer := compose.NewComposer(openai.NewClient(a.cfg.AI.APIKey), a.cfg.AI.Model, a.logger)

			content, err := composer.BrewPost(ctx, topic)
			if err != nil {
				return fmt.Errorf("drafting post: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), content)
			if dryRun {
				return nil
			}

			created, err := a.posts.Create(ctx, session.UserID, content, "")
			if err != nil {
				return fmt.Errorf("publishing post: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nPublished as %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "What the post should be about")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the draft without publishing")
	cmd.MarkFlagRequired("topic")

	return cmd
}

func newBaristasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baristas [query]",
		Short: "Browse the barista directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			a, err := buildApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			profiles, err := a.profiles.Directory(ctx, query)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No baristas found.")
				return nil
			}
			for _, p := range profiles {
				fmt.Fprintf(cmd.OutOrStdout(), "@%s\t%s\n", p.Handle, p.DisplayName)
			}
			return nil
		},
	}

	return cmd
}

func ensureStoreDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
