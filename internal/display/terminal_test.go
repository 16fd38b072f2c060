package display

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/twcoffee/wavegram/internal/domain/activity"
	"github.com/twcoffee/wavegram/internal/domain/post"
)

func TestFormatPost(t *testing.T) {
	formatter := NewTerminalFormatter()
	p := post.Post{
		ID:        "p1",
		Author:    "Maya",
		Handle:    "maya",
		Content:   "New Guatemalan beans just landed",
		Likes:     3,
		Shares:    1,
		Liked:     true,
		CreatedAt: time.Now().Add(-2 * time.Hour),
		Comments: []post.Comment{
			{ID: "c1", AuthorID: "u2", Body: "Save me a cup"},
		},
	}

	output := formatter.FormatPost(p)

	assert.Contains(t, output, "@maya (Maya)")
	assert.Contains(t, output, "New Guatemalan beans just landed")
	assert.Contains(t, output, "3 likes (you)")
	assert.Contains(t, output, "1 shares")
	assert.Contains(t, output, "Save me a cup")
	assert.Contains(t, output, "2 hours ago")
}

func TestFormatTimelineEmpty(t *testing.T) {
	output := NewTerminalFormatter().FormatTimeline(nil)
	assert.Contains(t, strings.ToLower(output), "no brews")
}

func TestFormatTimelineMultiplePosts(t *testing.T) {
	posts := []post.Post{
		{ID: "p1", Author: "A", Handle: "a", Content: "first", CreatedAt: time.Now()},
		{ID: "p2", Author: "B", Handle: "b", Content: "second", CreatedAt: time.Now()},
	}

	output := NewTerminalFormatter().FormatTimeline(posts)

	assert.Contains(t, output, "first")
	assert.Contains(t, output, "second")
	assert.Contains(t, output, "---")
}

func TestFormatActivityKinds(t *testing.T) {
	formatter := NewTerminalFormatter()
	now := time.Now()

	tests := []struct {
		name  string
		entry activity.ActivityEntry
		want  string
	}{
		{
			name:  "like",
			entry: activity.ActivityEntry{Kind: activity.KindLike, ActorName: "Jonah", PostSnippet: "your brew", OccurredAt: now},
			want:  "Jonah liked",
		},
		{
			name:  "comment with body",
			entry: activity.ActivityEntry{Kind: activity.KindComment, ActorName: "Elle", CommentBody: "so smooth", PostSnippet: "morning pour", OccurredAt: now},
			want:  `commented "so smooth" on`,
		},
		{
			name:  "share",
			entry: activity.ActivityEntry{Kind: activity.KindShare, ActorName: "Maya", PostSnippet: "cold brew", OccurredAt: now},
			want:  "Maya shared",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := formatter.FormatActivity(tt.entry, false)
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestFormatActivityUnreadMarker(t *testing.T) {
	formatter := NewTerminalFormatter()
	entry := activity.ActivityEntry{Kind: activity.KindLike, ActorName: "Jonah", PostSnippet: "your brew", OccurredAt: time.Now()}

	assert.True(t, strings.HasPrefix(formatter.FormatActivity(entry, true), "*"))
	assert.True(t, strings.HasPrefix(formatter.FormatActivity(entry, false), " "))
}

func TestFormatActivityFeedEmpty(t *testing.T) {
	output := NewTerminalFormatter().FormatActivityFeed(nil, nil)
	assert.Contains(t, strings.ToLower(output), "no activity")
}

func TestFormatActivityFeedMarksUnread(t *testing.T) {
	formatter := NewTerminalFormatter()
	entries := []activity.ActivityEntry{
		{Kind: activity.KindLike, ActorName: "New", PostSnippet: "brew", OccurredAt: time.Now()},
		{Kind: activity.KindLike, ActorName: "Old", PostSnippet: "brew", OccurredAt: time.Now().Add(-time.Hour)},
	}

	output := formatter.FormatActivityFeed(entries, func(e activity.ActivityEntry) bool {
		return e.ActorName == "New"
	})

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "*"))
	assert.True(t, strings.HasPrefix(lines[1], " "))
}

func TestFormatTimestampRelative(t *testing.T) {
	formatter := NewTerminalFormatter()

	tests := []struct {
		name      string
		timestamp time.Time
		contains  string
	}{
		{"just now", time.Now().Add(-10 * time.Second), "just now"},
		{"minutes", time.Now().Add(-30 * time.Minute), "minute"},
		{"hours", time.Now().Add(-3 * time.Hour), "hour"},
		{"days", time.Now().Add(-48 * time.Hour), "day"},
		{"old dates", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), "Jan 15, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, formatter.FormatTimestamp(tt.timestamp), tt.contains)
		})
	}
}

func TestTruncateText(t *testing.T) {
	formatter := NewTerminalFormatter()

	assert.Equal(t, "short", formatter.TruncateText("short", 20))
	truncated := formatter.TruncateText("a very long snippet that keeps going and going", 20)
	assert.Len(t, truncated, 20)
	assert.True(t, strings.HasSuffix(truncated, "..."))
}
