// Package unread maintains the "last viewed" watermark separating already
// seen activity from new activity, and derives the unread badge count.
package unread

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/twcoffee/wavegram/internal/domain/activity"
)

// StorageKey is the durable key holding the watermark as an
// epoch-millisecond string.
const StorageKey = "lastViewedInteractions"

// Store is the durable local key-value storage the watermark survives
// restarts in.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Tracker owns the watermark. The watermark only moves forward, and only
// when the user opens the activity view, never from background fetches.
type Tracker struct {
	mu         sync.Mutex
	store      Store
	logger     *slog.Logger
	lastViewed int64 // epoch ms
	now        func() time.Time
}

// NewTracker creates a tracker initialized from durable storage. An absent
// or unparseable stored value starts the watermark at zero.
func NewTracker(ctx context.Context, store Store, logger *slog.Logger) (*Tracker, error) {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{store: store, logger: logger, now: time.Now}

	raw, ok, err := store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("loading watermark: %w", err)
	}
	if ok {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			logger.Warn("discarding malformed watermark", "value", raw)
		} else {
			t.lastViewed = ms
		}
	}
	return t, nil
}

// LastViewed returns the current watermark in epoch milliseconds.
func (t *Tracker) LastViewed() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastViewed
}

// IsUnread reports whether the entry occurred after the current watermark.
func (t *Tracker) IsUnread(entry activity.ActivityEntry) bool {
	return entry.OccurredAt.UnixMilli() > t.LastViewed()
}

// CountUnread counts entries newer than the watermark. While the activity
// view is open the count is pinned to zero: anything arriving in front of
// the user counts as seen.
func (t *Tracker) CountUnread(entries []activity.ActivityEntry, viewingActivity bool) int {
	if viewingActivity {
		return 0
	}
	watermark := t.LastViewed()
	count := 0
	for _, entry := range entries {
		if entry.OccurredAt.UnixMilli() > watermark {
			count++
		}
	}
	return count
}

// Advance moves the watermark to max(now, newest entry time) and persists
// it. Taking the max with the entry times tolerates backend clocks running
// ahead of the local one: a future-dated entry must still end up on the
// "seen" side. The write is monotonic: a computed value at or below the
// committed one is a no-op.
//
// The in-memory value and the durable write commit under one lock so a
// concurrently scheduled pass can never read a value the store doesn't yet
// hold. A failed store write is logged and the session keeps the advanced
// in-memory value; the worst case is re-showing seen items next session.
func (t *Tracker) Advance(ctx context.Context, entries []activity.ActivityEntry) int64 {
	target := t.now().UnixMilli()
	for _, entry := range entries {
		if ms := entry.OccurredAt.UnixMilli(); ms > target {
			target = ms
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if target <= t.lastViewed {
		return t.lastViewed
	}
	t.lastViewed = target

	if err := t.store.Set(ctx, StorageKey, strconv.FormatInt(target, 10)); err != nil {
		t.logger.Error("persisting watermark failed", "error", err, "watermark", target)
	}
	return target
}
