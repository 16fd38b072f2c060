package activity

import "time"

// Kind discriminates the three interaction record shapes.
type Kind string

const (
	KindLike    Kind = "like"
	KindComment Kind = "comment"
	KindShare   Kind = "share"
)

// Fallback values used when a referenced profile row or field is absent.
const (
	FallbackActorName   = "A barista"
	FallbackActorHandle = "unknown"
	FallbackSnippet     = "your brew"

	identiconURL = "https://api.dicebear.com/7.x/identicon/svg?seed="
)

// ActivityEntry is one normalized interaction on the viewer's content,
// ready for display. Entries are a pure projection of remote state and are
// never mutated after construction.
type ActivityEntry struct {
	ID             string    `json:"id"`
	Kind           Kind      `json:"kind"`
	ActorID        string    `json:"actor_id"`
	ActorName      string    `json:"actor_name"`
	ActorHandle    string    `json:"actor_handle"`
	ActorAvatarURL string    `json:"actor_avatar"`
	PostID         string    `json:"post_id"`
	PostSnippet    string    `json:"post_snippet"`
	CommentBody    string    `json:"comment_body,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// FallbackAvatarURL returns the deterministic identicon for an actor with
// no stored avatar.
func FallbackAvatarURL(actorID string) string {
	return identiconURL + actorID
}

// normalizeTime maps a missing source timestamp to the Unix epoch so that
// such entries can never classify as newer than a persisted watermark.
func normalizeTime(t time.Time) time.Time {
	if t.IsZero() {
		return time.UnixMilli(0).UTC()
	}
	return t
}
