package backend

import (
	"context"
	"net/url"

	"github.com/twcoffee/wavegram/internal/repository"
)

// LikeRepository implements repository.LikeRepository over the backend.
type LikeRepository struct {
	client *Client
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(client *Client) *LikeRepository {
	return &LikeRepository{client: client}
}

func (r *LikeRepository) ListByPosts(ctx context.Context, postIDs []string) ([]repository.Like, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	params := url.Values{}
	params.Set("post_id", in(postIDs))

	var likes []repository.Like
	if err := r.client.get(ctx, "likes", params, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *LikeRepository) Create(ctx context.Context, like *repository.Like) error {
	return r.client.insert(ctx, "likes", like)
}

func (r *LikeRepository) Delete(ctx context.Context, postID, actorID string) error {
	params := url.Values{}
	params.Set("post_id", eq(postID))
	params.Set("user_id", eq(actorID))
	return r.client.remove(ctx, "likes", params)
}

func (r *LikeRepository) DeleteByPost(ctx context.Context, postID string) error {
	params := url.Values{}
	params.Set("post_id", eq(postID))
	return r.client.remove(ctx, "likes", params)
}

func (r *LikeRepository) IncrementCount(ctx context.Context, postID string) error {
	return r.client.rpc(ctx, "increment_likes", map[string]string{"post_id_val": postID})
}

func (r *LikeRepository) DecrementCount(ctx context.Context, postID string) error {
	return r.client.rpc(ctx, "decrement_likes", map[string]string{"post_id_val": postID})
}
