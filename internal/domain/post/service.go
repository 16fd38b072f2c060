// Package post provides the timeline: fetching brews for display and the
// mutations a signed-in user can perform on them.
package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/twcoffee/wavegram/internal/domain/activity"
	"github.com/twcoffee/wavegram/internal/repository"
)

// Service handles timeline reads and post mutations.
type Service struct {
	posts    repository.PostRepository
	likes    repository.LikeRepository
	comments repository.CommentRepository
	shares   repository.ShareRepository
	logger   *slog.Logger
}

// NewService creates a new post service.
func NewService(
	posts repository.PostRepository,
	likes repository.LikeRepository,
	comments repository.CommentRepository,
	shares repository.ShareRepository,
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
		logger:   logger,
	}
}

// Timeline returns all posts newest first, with author fallbacks applied
// and the viewer's like state resolved.
func (s *Service) Timeline(ctx context.Context, viewerID string) ([]Post, error) {
	rows, err := s.posts.ListTimeline(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching timeline: %w", err)
	}

	posts := make([]Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, buildPost(row, viewerID))
	}
	return posts, nil
}

func buildPost(row repository.TimelinePost, viewerID string) Post {
	p := Post{
		ID:        row.ID,
		AuthorID:  row.OwnerID,
		Author:    activity.FallbackActorName,
		Handle:    activity.FallbackActorHandle,
		AvatarURL: activity.FallbackAvatarURL(row.OwnerID),
		Content:   row.Content,
		ImageURL:  row.ImageURL,
		Likes:     row.LikesCount,
		Shares:    row.ShareCount,
		CreatedAt: row.CreatedAt,
		Comments:  make([]Comment, 0, len(row.Comments)),
	}
	if row.Author != nil {
		if row.Author.DisplayName != "" {
			p.Author = row.Author.DisplayName
		}
		if row.Author.Handle != "" {
			p.Handle = row.Author.Handle
		}
		if row.Author.AvatarURL != "" {
			p.AvatarURL = row.Author.AvatarURL
		}
	}
	for _, c := range row.Comments {
		p.Comments = append(p.Comments, Comment{
			ID:        c.ID,
			AuthorID:  c.ActorID,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}
	for _, likerID := range row.LikeUserIDs {
		if likerID == viewerID {
			p.Liked = true
			break
		}
	}
	return p
}

// Create publishes a new brew for authorID.
func (s *Service) Create(ctx context.Context, authorID, content, imageURL string) (*repository.Post, error) {
	if authorID == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	p := &repository.Post{
		ID:       uuid.NewString(),
		OwnerID:  authorID,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	return p, nil
}

// Update edits an existing brew's content and image.
func (s *Service) Update(ctx context.Context, id, content, imageURL string) error {
	if id == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if err := s.posts.Update(ctx, id, content, imageURL); err != nil {
		return fmt.Errorf("updating post: %w", err)
	}
	return nil
}

// Delete removes a brew and its dependent records. The backend has no
// cascading deletes, so shares, likes and comments go first; a failure on
// the dependents leaves the post in place.
func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	if id == "" || ownerID == "" {
		return ErrInvalidInput
	}
	if err := s.shares.DeleteByPost(ctx, id); err != nil {
		return fmt.Errorf("deleting shares: %w", err)
	}
	if err := s.likes.DeleteByPost(ctx, id); err != nil {
		return fmt.Errorf("deleting likes: %w", err)
	}
	if err := s.comments.DeleteByPost(ctx, id); err != nil {
		return fmt.Errorf("deleting comments: %w", err)
	}
	if err := s.posts.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	return nil
}

// Like records a sip on a post and bumps the denormalized counter.
func (s *Service) Like(ctx context.Context, postID, userID string) error {
	if postID == "" || userID == "" {
		return ErrInvalidInput
	}
	like := &repository.Like{
		ID:      uuid.NewString(),
		PostID:  postID,
		ActorID: userID,
	}
	if err := s.likes.Create(ctx, like); err != nil {
		return fmt.Errorf("liking post: %w", err)
	}
	if err := s.likes.IncrementCount(ctx, postID); err != nil {
		// The like row exists; the counter is advisory and self-heals on
		// the next recount.
		s.logger.Warn("incrementing like count failed", "post", postID, "error", err)
	}
	return nil
}

// Unlike removes the viewer's sip and drops the counter.
func (s *Service) Unlike(ctx context.Context, postID, userID string) error {
	if postID == "" || userID == "" {
		return ErrInvalidInput
	}
	if err := s.likes.Delete(ctx, postID, userID); err != nil {
		return fmt.Errorf("unliking post: %w", err)
	}
	if err := s.likes.DecrementCount(ctx, postID); err != nil {
		s.logger.Warn("decrementing like count failed", "post", postID, "error", err)
	}
	return nil
}

// AddComment posts a reply on a brew.
func (s *Service) AddComment(ctx context.Context, postID, userID, body string) (*repository.Comment, error) {
	if postID == "" || userID == "" {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyContent
	}
	comment := &repository.Comment{
		ID:      uuid.NewString(),
		PostID:  postID,
		ActorID: userID,
		Body:    body,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("adding comment: %w", err)
	}
	return comment, nil
}

// Share forwards a brew to another user.
func (s *Service) Share(ctx context.Context, postID, senderID, receiverID string) error {
	if postID == "" || senderID == "" || receiverID == "" {
		return ErrInvalidInput
	}
	share := &repository.Share{
		ID:         uuid.NewString(),
		PostID:     postID,
		SenderID:   senderID,
		ReceiverID: receiverID,
	}
	if err := s.shares.Create(ctx, share); err != nil {
		return fmt.Errorf("sharing post: %w", err)
	}
	return nil
}
