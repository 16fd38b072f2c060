package activity

import (
	"context"
	"log/slog"

	"github.com/twcoffee/wavegram/internal/repository"
)

// Service reconstructs the "who interacted with my content" feed from the
// backend's like, comment and share tables.
type Service struct {
	posts    repository.PostRepository
	likes    repository.LikeRepository
	comments repository.CommentRepository
	shares   repository.ShareRepository
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

// NewService creates a new activity service.
func NewService(
	posts repository.PostRepository,
	likes repository.LikeRepository,
	comments repository.CommentRepository,
	shares repository.ShareRepository,
	profiles repository.ProfileRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		posts:    posts,
		likes:    likes,
		comments: comments,
		shares:   shares,
		profiles: profiles,
		logger:   logger,
	}
}

// Aggregate runs one full aggregation pass for userID and returns the
// merged, ordered entry list. Any query failure aborts the whole pass with
// a *FetchError; the result is never partial. The pass is read-only.
func (s *Service) Aggregate(ctx context.Context, userID string) ([]ActivityEntry, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}

	ownPosts, err := s.posts.ListByOwner(ctx, userID)
	if err != nil {
		return nil, &FetchError{Stage: "own posts", Err: err}
	}

	// A user with no posts can have no interactions on them. Returning
	// early also keeps the downstream queries from running with an empty
	// id filter, which the backend would treat as an unfiltered match.
	if len(ownPosts) == 0 {
		return []ActivityEntry{}, nil
	}

	postIDs := make([]string, 0, len(ownPosts))
	snippets := make(map[string]string, len(ownPosts))
	for _, post := range ownPosts {
		postIDs = append(postIDs, post.ID)
		snippets[post.ID] = post.Content
	}

	shares, err := s.shares.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, &FetchError{Stage: "shares", Err: err}
	}

	// Posts shared to this user may not be their own; resolve the snippet
	// text for those separately. Ids still missing afterwards keep the
	// fallback snippet.
	var missing []string
	for _, share := range shares {
		if _, ok := snippets[share.PostID]; !ok {
			missing = append(missing, share.PostID)
		}
	}
	if len(missing) > 0 {
		extra, err := s.posts.GetByIDs(ctx, missing)
		if err != nil {
			return nil, &FetchError{Stage: "shared posts", Err: err}
		}
		for _, post := range extra {
			snippets[post.ID] = post.Content
		}
	}

	likes, err := s.likes.ListByPosts(ctx, postIDs)
	if err != nil {
		return nil, &FetchError{Stage: "likes", Err: err}
	}

	comments, err := s.comments.ListByPosts(ctx, postIDs)
	if err != nil {
		return nil, &FetchError{Stage: "comments", Err: err}
	}

	actorIDs := collectActorIDs(shares, likes, comments)
	profiles := make(map[string]repository.Profile, len(actorIDs))
	if len(actorIDs) > 0 {
		rows, err := s.profiles.GetByIDs(ctx, actorIDs)
		if err != nil {
			return nil, &FetchError{Stage: "profiles", Err: err}
		}
		for _, row := range rows {
			profiles[row.ID] = row
		}
	}

	entries := Merge(userID, snippets, shares, likes, comments, profiles)
	s.logger.Debug("aggregated activity", "user", userID, "entries", len(entries))
	return entries, nil
}

func collectActorIDs(shares []repository.Share, likes []repository.Like, comments []repository.Comment) []string {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, share := range shares {
		add(share.SenderID)
	}
	for _, like := range likes {
		add(like.ActorID)
	}
	for _, comment := range comments {
		add(comment.ActorID)
	}
	return ids
}
