package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/twcoffee/wavegram/internal/domain/post"
)

// TimelineCache keeps the last fetched timeline on disk so a cold start
// can render immediately while the first fetch is in flight.
type TimelineCache struct {
	db *DB
}

// NewTimelineCache creates a new TimelineCache
func NewTimelineCache(db *DB) *TimelineCache {
	return &TimelineCache{db: db}
}

// Save replaces the cached timeline.
func (c *TimelineCache) Save(ctx context.Context, posts []post.Post) error {
	payload, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to encode timeline cache: %w", err)
	}
	query := `
		INSERT INTO timeline_cache (id, payload, cached_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, cached_at = CURRENT_TIMESTAMP
	`
	if _, err := c.db.ExecContext(ctx, query, string(payload)); err != nil {
		return fmt.Errorf("failed to write timeline cache: %w", err)
	}
	return nil
}

// Load returns the cached timeline and when it was cached. An empty cache
// returns no posts and a zero time, not an error.
func (c *TimelineCache) Load(ctx context.Context) ([]post.Post, time.Time, error) {
	var payload string
	var cachedAt time.Time
	err := c.db.QueryRowContext(ctx, `SELECT payload, cached_at FROM timeline_cache WHERE id = 1`).Scan(&payload, &cachedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read timeline cache: %w", err)
	}

	var posts []post.Post
	if err := json.Unmarshal([]byte(payload), &posts); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to decode timeline cache: %w", err)
	}
	return posts, cachedAt, nil
}
