// Package display provides terminal output formatting for the Wavegram CLI.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/twcoffee/wavegram/internal/domain/activity"
	"github.com/twcoffee/wavegram/internal/domain/post"
)

const separator = " • "

// TerminalFormatter formats timeline posts and activity entries for terminal display.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a new terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// FormatPost formats a single timeline post for display.
func (f *TerminalFormatter) FormatPost(p post.Post) string {
	var lines []string

	header := fmt.Sprintf("@%s (%s)%s%s", p.Handle, p.Author, separator, f.FormatTimestamp(p.CreatedAt))
	lines = append(lines, header)
	lines = append(lines, "  "+p.Content)

	if p.ImageURL != "" {
		lines = append(lines, "  "+p.ImageURL)
	}

	if stats := f.formatStats(p); stats != "" {
		lines = append(lines, "  "+stats)
	}

	for _, c := range p.Comments {
		lines = append(lines, fmt.Sprintf("    > %s: %s", c.AuthorID, f.TruncateText(c.Body, 80)))
	}

	return strings.Join(lines, "\n") + "\n"
}

func (f *TerminalFormatter) formatStats(p post.Post) string {
	var parts []string

	if p.Likes > 0 {
		liked := ""
		if p.Liked {
			liked = " (you)"
		}
		parts = append(parts, fmt.Sprintf("%d likes%s", p.Likes, liked))
	}
	if len(p.Comments) > 0 {
		parts = append(parts, fmt.Sprintf("%d comments", len(p.Comments)))
	}
	if p.Shares > 0 {
		parts = append(parts, fmt.Sprintf("%d shares", p.Shares))
	}

	return strings.Join(parts, separator)
}

// FormatTimeline formats multiple posts for display.
func (f *TerminalFormatter) FormatTimeline(posts []post.Post) string {
	if len(posts) == 0 {
		return "No brews on the timeline yet.\n"
	}

	var formatted []string
	for _, p := range posts {
		formatted = append(formatted, f.FormatPost(p))
	}

	return strings.Join(formatted, "\n---\n\n")
}

// FormatActivity formats an activity entry as one line.
func (f *TerminalFormatter) FormatActivity(entry activity.ActivityEntry, unread bool) string {
	marker := " "
	if unread {
		marker = "*"
	}

	action := f.describeAction(entry)
	snippet := f.TruncateText(entry.PostSnippet, 40)
	return fmt.Sprintf("%s %s %s %q%s%s", marker, entry.ActorName, action, snippet, separator, f.FormatTimestamp(entry.OccurredAt))
}

func (f *TerminalFormatter) describeAction(entry activity.ActivityEntry) string {
	switch entry.Kind {
	case activity.KindLike:
		return "liked"
	case activity.KindComment:
		if entry.CommentBody != "" {
			return fmt.Sprintf("commented %q on", f.TruncateText(entry.CommentBody, 40))
		}
		return "commented on"
	case activity.KindShare:
		return "shared"
	default:
		return "touched"
	}
}

// FormatActivityFeed formats the full activity list, marking unread entries.
func (f *TerminalFormatter) FormatActivityFeed(entries []activity.ActivityEntry, isUnread func(activity.ActivityEntry) bool) string {
	if len(entries) == 0 {
		return "No activity yet. Brew something.\n"
	}

	var lines []string
	for _, entry := range entries {
		lines = append(lines, f.FormatActivity(entry, isUnread != nil && isUnread(entry)))
	}

	return strings.Join(lines, "\n") + "\n"
}

// FormatTimestamp formats a timestamp as relative time.
func (f *TerminalFormatter) FormatTimestamp(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return pluralize(int(diff.Hours()/24), "day")
	default:
		return t.Format("Jan 2, 2006")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// TruncateText truncates text to maxLen, adding "..." if truncated.
func (f *TerminalFormatter) TruncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return "..."
	}
	return text[:maxLen-3] + "..."
}
