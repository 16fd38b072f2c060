// Package realtime delivers backend change notifications over redis
// pub/sub. The backend publishes one JSON payload per table change; the
// client's only job is to turn those into refresh triggers.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Tables the feed engine cares about.
const (
	TablePosts    = "posts"
	TableLikes    = "likes"
	TableComments = "comments"
	TableShares   = "shares"
)

// Event is one table-change notification.
type Event struct {
	Table    string `json:"table"`
	Action   string `json:"action"`
	RecordID string `json:"record_id,omitempty"`
}

// Subscriber listens for change notifications on per-table channels named
// "<prefix>:changes:<table>".
type Subscriber struct {
	rdb    *redis.Client
	prefix string
	logger *slog.Logger
}

// NewSubscriber creates a subscriber over an existing redis client.
func NewSubscriber(rdb *redis.Client, prefix string, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	if prefix == "" {
		prefix = "wavegram"
	}
	return &Subscriber{rdb: rdb, prefix: prefix, logger: logger}
}

// Changes subscribes to the given tables and streams their change events
// until ctx is canceled. The returned channel closes on teardown, so a
// consumer started per mount never leaks its registration.
func (s *Subscriber) Changes(ctx context.Context, tables ...string) (<-chan Event, error) {
	channels := make([]string, len(tables))
	for i, table := range tables {
		channels[i] = s.channelName(table)
	}

	pubsub := s.rdb.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	out := make(chan Event, 16)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				event := DecodeEvent(msg.Channel, msg.Payload)
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (s *Subscriber) channelName(table string) string {
	return s.prefix + ":changes:" + table
}

// DecodeEvent parses a notification payload. A malformed payload still
// yields an event for the channel's table: a change notice only has to
// trigger a refresh, not describe the change.
func DecodeEvent(channel, payload string) Event {
	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil || event.Table == "" {
		event = Event{Table: tableFromChannel(channel)}
	}
	return event
}

func tableFromChannel(channel string) string {
	idx := strings.LastIndex(channel, ":")
	if idx < 0 {
		return channel
	}
	return channel[idx+1:]
}
