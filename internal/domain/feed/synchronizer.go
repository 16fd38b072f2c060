// Package feed drives when activity aggregation re-runs and applies the
// results race-safely.
package feed

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/twcoffee/wavegram/internal/domain/activity"
	"github.com/twcoffee/wavegram/internal/realtime"
)

// Aggregator runs one aggregation pass. Satisfied by *activity.Service.
type Aggregator interface {
	Aggregate(ctx context.Context, userID string) ([]activity.ActivityEntry, error)
}

// UnreadTracker is the watermark side of the engine. Satisfied by
// *unread.Tracker.
type UnreadTracker interface {
	CountUnread(entries []activity.ActivityEntry, viewingActivity bool) int
	Advance(ctx context.Context, entries []activity.ActivityEntry) int64
}

// Snapshot is the externally visible state of the feed engine. It is
// always internally consistent: entries, unread count and loading flag
// come from one moment under the lock.
type Snapshot struct {
	Entries     []activity.ActivityEntry
	UnreadCount int
	Loading     bool
}

// Synchronizer coordinates aggregation passes. Passes are tagged with a
// monotonic sequence number at start; a pass may only apply its results if
// no later-started pass has applied first, so completion order cannot
// reorder trigger order. Superseded results are discarded on arrival;
// there is no hard cancellation of in-flight fetches.
type Synchronizer struct {
	agg    Aggregator
	unread UnreadTracker
	logger *slog.Logger
	userID string

	mu         sync.Mutex
	nextSeq    uint64
	appliedSeq uint64
	inflight   int
	viewing    bool
	entries    []activity.ActivityEntry
}

// NewSynchronizer creates a synchronizer for one user's feed.
func NewSynchronizer(agg Aggregator, unread UnreadTracker, userID string, logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synchronizer{agg: agg, unread: unread, userID: userID, logger: logger}
}

// Refresh runs one aggregation pass to completion and applies the result
// unless a later-started pass already did. A failed pass leaves the
// previously applied entries untouched and returns the error; the engine
// never retries on its own.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.nextSeq++
	seq := s.nextSeq
	s.inflight++
	s.mu.Unlock()

	entries, err := s.agg.Aggregate(ctx, s.userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--

	if err != nil {
		s.logger.Warn("aggregation pass failed", "seq", seq, "error", err)
		return err
	}
	if seq <= s.appliedSeq {
		s.logger.Debug("discarding superseded pass", "seq", seq, "applied", s.appliedSeq)
		return nil
	}
	s.appliedSeq = seq
	s.entries = entries
	return nil
}

// Snapshot returns the current entries, unread count and loading state.
// The unread count is re-derived from the stored watermark here rather
// than cached across any async gap.
func (s *Synchronizer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Entries:     slices.Clone(s.entries),
		UnreadCount: s.unread.CountUnread(s.entries, s.viewing),
		Loading:     s.inflight > 0,
	}
}

// OpenActivity marks the activity view open. The unread count drops to
// zero immediately and the watermark advances over whatever entries are
// held right now; it does not wait for any in-flight fetch.
func (s *Synchronizer) OpenActivity(ctx context.Context) {
	s.mu.Lock()
	s.viewing = true
	entries := slices.Clone(s.entries)
	s.mu.Unlock()

	s.unread.Advance(ctx, entries)
}

// CloseActivity marks the activity view closed; unread counting resumes
// against the watermark.
func (s *Synchronizer) CloseActivity() {
	s.mu.Lock()
	s.viewing = false
	s.mu.Unlock()
}

// Run performs the initial pass and then refreshes on every change
// notification until ctx is done. Notification bursts coalesce into a
// single pass: everything queued when a refresh becomes due is drained
// first.
func (s *Synchronizer) Run(ctx context.Context, events <-chan realtime.Event) error {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("initial refresh failed", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			drained := 1
		drain:
			for {
				select {
				case _, more := <-events:
					if !more {
						break drain
					}
					drained++
				default:
					break drain
				}
			}
			s.logger.Debug("change notification", "table", event.Table, "coalesced", drained)
			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn("refresh after change failed", "table", event.Table, "error", err)
			}
		}
	}
}
