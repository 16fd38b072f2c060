package activity

import (
	"sort"
	"time"

	"github.com/twcoffee/wavegram/internal/repository"
)

// Merge normalizes the three heterogeneous interaction streams into one
// list of entries, newest first. Actions performed by the content owner
// produce no entry. Ties on the timestamp keep input-stream order: shares,
// then likes, then comments, each in the order the backend returned them.
//
// Merge is pure: identical inputs yield identical output, and the inputs
// are never modified.
func Merge(
	ownerID string,
	snippets map[string]string,
	shares []repository.Share,
	likes []repository.Like,
	comments []repository.Comment,
	profiles map[string]repository.Profile,
) []ActivityEntry {
	entries := make([]ActivityEntry, 0, len(shares)+len(likes)+len(comments))

	for _, share := range shares {
		if share.SenderID == ownerID {
			continue
		}
		entries = append(entries, buildEntry(KindShare, share.ID, share.SenderID, share.PostID, share.CreatedAt, "", snippets, profiles))
	}
	for _, like := range likes {
		if like.ActorID == ownerID {
			continue
		}
		entries = append(entries, buildEntry(KindLike, like.ID, like.ActorID, like.PostID, like.CreatedAt, "", snippets, profiles))
	}
	for _, comment := range comments {
		if comment.ActorID == ownerID {
			continue
		}
		entries = append(entries, buildEntry(KindComment, comment.ID, comment.ActorID, comment.PostID, comment.CreatedAt, comment.Body, snippets, profiles))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OccurredAt.After(entries[j].OccurredAt)
	})

	return entries
}

func buildEntry(
	kind Kind,
	recordID, actorID, postID string,
	createdAt time.Time,
	commentBody string,
	snippets map[string]string,
	profiles map[string]repository.Profile,
) ActivityEntry {
	entry := ActivityEntry{
		ID:             string(kind) + "-" + recordID,
		Kind:           kind,
		ActorID:        actorID,
		ActorName:      FallbackActorName,
		ActorHandle:    FallbackActorHandle,
		ActorAvatarURL: FallbackAvatarURL(actorID),
		PostID:         postID,
		PostSnippet:    FallbackSnippet,
		CommentBody:    commentBody,
		OccurredAt:     normalizeTime(createdAt),
	}

	if profile, ok := profiles[actorID]; ok {
		if profile.DisplayName != "" {
			entry.ActorName = profile.DisplayName
		} else if profile.Handle != "" {
			entry.ActorName = profile.Handle
		}
		if profile.Handle != "" {
			entry.ActorHandle = profile.Handle
		}
		if profile.AvatarURL != "" {
			entry.ActorAvatarURL = profile.AvatarURL
		}
	}
	if snippet, ok := snippets[postID]; ok && snippet != "" {
		entry.PostSnippet = snippet
	}

	return entry
}
