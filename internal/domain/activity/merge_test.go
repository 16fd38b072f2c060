package activity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/twcoffee/wavegram/internal/domain/activity"
	"github.com/twcoffee/wavegram/internal/repository"
)

const ownerID = "owner-1"

func ts(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func TestMerge_NewestFirst(t *testing.T) {
	snippets := map[string]string{"p1": "latte art"}
	likes := []repository.Like{
		{ID: "l1", PostID: "p1", ActorID: "u2", CreatedAt: ts(100)},
		{ID: "l2", PostID: "p1", ActorID: "u3", CreatedAt: ts(200)},
	}

	entries := activity.Merge(ownerID, snippets, nil, likes, nil, nil)

	require.Len(t, entries, 2)
	require.Equal(t, "like-l2", entries[0].ID)
	require.Equal(t, "like-l1", entries[1].ID)
	require.Equal(t, ts(200), entries[0].OccurredAt)
}

func TestMerge_ExcludesOwnerActions(t *testing.T) {
	snippets := map[string]string{"p1": "latte art"}
	likes := []repository.Like{
		{ID: "l1", PostID: "p1", ActorID: ownerID, CreatedAt: ts(100)},
	}
	comments := []repository.Comment{
		{ID: "c1", PostID: "p1", ActorID: ownerID, Body: "nice", CreatedAt: ts(150)},
	}
	shares := []repository.Share{
		{ID: "s1", PostID: "p1", SenderID: ownerID, ReceiverID: ownerID, CreatedAt: ts(200)},
	}

	entries := activity.Merge(ownerID, snippets, shares, likes, comments, nil)
	require.Empty(t, entries)
}

func TestMerge_Idempotent(t *testing.T) {
	snippets := map[string]string{"p1": "latte art", "p2": "cold brew"}
	shares := []repository.Share{
		{ID: "s1", PostID: "p2", SenderID: "u4", ReceiverID: ownerID, CreatedAt: ts(300)},
	}
	likes := []repository.Like{
		{ID: "l1", PostID: "p1", ActorID: "u2", CreatedAt: ts(300)},
		{ID: "l2", PostID: "p1", ActorID: "u3", CreatedAt: ts(100)},
	}
	comments := []repository.Comment{
		{ID: "c1", PostID: "p1", ActorID: "u2", Body: "recipe?", CreatedAt: ts(300)},
	}
	profiles := map[string]repository.Profile{
		"u2": {ID: "u2", DisplayName: "Maya", Handle: "maya", AvatarURL: "https://img/u2"},
	}

	first := activity.Merge(ownerID, snippets, shares, likes, comments, profiles)
	second := activity.Merge(ownerID, snippets, shares, likes, comments, profiles)

	require.Equal(t, first, second)

	// Ties on the timestamp keep input-stream order: shares before likes
	// before comments.
	require.Equal(t, []string{"share-s1", "like-l1", "comment-c1", "like-l2"},
		[]string{first[0].ID, first[1].ID, first[2].ID, first[3].ID})
}

func TestMerge_ProfileFallbacks(t *testing.T) {
	snippets := map[string]string{"p1": "latte art"}
	likes := []repository.Like{
		{ID: "l1", PostID: "p1", ActorID: "ghost", CreatedAt: ts(100)},
	}

	entries := activity.Merge(ownerID, snippets, nil, likes, nil, map[string]repository.Profile{})

	require.Len(t, entries, 1)
	require.Equal(t, activity.FallbackActorName, entries[0].ActorName)
	require.Equal(t, activity.FallbackActorHandle, entries[0].ActorHandle)
	require.Equal(t, activity.FallbackAvatarURL("ghost"), entries[0].ActorAvatarURL)
}

func TestMerge_PartialProfileFallsBackPerField(t *testing.T) {
	snippets := map[string]string{"p1": "latte art"}
	comments := []repository.Comment{
		{ID: "c1", PostID: "p1", ActorID: "u2", Body: "so good", CreatedAt: ts(100)},
	}
	profiles := map[string]repository.Profile{
		"u2": {ID: "u2", Handle: "maya"},
	}

	entries := activity.Merge(ownerID, snippets, nil, nil, comments, profiles)

	require.Len(t, entries, 1)
	// No display name: the handle stands in before the generic label.
	require.Equal(t, "maya", entries[0].ActorName)
	require.Equal(t, "maya", entries[0].ActorHandle)
	require.Equal(t, activity.FallbackAvatarURL("u2"), entries[0].ActorAvatarURL)
	require.Equal(t, "so good", entries[0].CommentBody)
}

func TestMerge_MissingSnippetUsesFallback(t *testing.T) {
	shares := []repository.Share{
		{ID: "s1", PostID: "unknown-post", SenderID: "u4", ReceiverID: ownerID, CreatedAt: ts(100)},
	}

	entries := activity.Merge(ownerID, map[string]string{}, shares, nil, nil, nil)

	require.Len(t, entries, 1)
	require.Equal(t, activity.FallbackSnippet, entries[0].PostSnippet)
}

func TestMerge_MissingTimestampDefaultsToEpoch(t *testing.T) {
	snippets := map[string]string{"p1": "latte art"}
	comments := []repository.Comment{
		{ID: "c1", PostID: "p1", ActorID: "u2", Body: "hi"},
	}

	entries := activity.Merge(ownerID, snippets, nil, nil, comments, nil)

	require.Len(t, entries, 1)
	require.Equal(t, int64(0), entries[0].OccurredAt.UnixMilli())
}

func TestMerge_CommentBodyOnlyOnComments(t *testing.T) {
	snippets := map[string]string{"p1": "latte art"}
	likes := []repository.Like{
		{ID: "l1", PostID: "p1", ActorID: "u2", CreatedAt: ts(100)},
	}
	shares := []repository.Share{
		{ID: "s1", PostID: "p1", SenderID: "u3", ReceiverID: ownerID, CreatedAt: ts(100)},
	}

	entries := activity.Merge(ownerID, snippets, shares, likes, nil, nil)
	for _, entry := range entries {
		require.Empty(t, entry.CommentBody)
	}
}
