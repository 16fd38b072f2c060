package backend

import (
	"context"
	"net/url"

	"github.com/twcoffee/wavegram/internal/repository"
)

// CommentRepository implements repository.CommentRepository over the backend.
type CommentRepository struct {
	client *Client
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(client *Client) *CommentRepository {
	return &CommentRepository{client: client}
}

func (r *CommentRepository) ListByPosts(ctx context.Context, postIDs []string) ([]repository.Comment, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	params := url.Values{}
	params.Set("post_id", in(postIDs))

	var comments []repository.Comment
	if err := r.client.get(ctx, "comments", params, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *repository.Comment) error {
	return r.client.insert(ctx, "comments", comment)
}

func (r *CommentRepository) DeleteByPost(ctx context.Context, postID string) error {
	params := url.Values{}
	params.Set("post_id", eq(postID))
	return r.client.remove(ctx, "comments", params)
}
