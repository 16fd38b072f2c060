package backend

import (
	"context"
	"net/url"

	"github.com/twcoffee/wavegram/internal/repository"
)

// ShareRepository implements repository.ShareRepository over the backend.
type ShareRepository struct {
	client *Client
}

// NewShareRepository creates a new ShareRepository
func NewShareRepository(client *Client) *ShareRepository {
	return &ShareRepository{client: client}
}

func (r *ShareRepository) ListByReceiver(ctx context.Context, receiverID string) ([]repository.Share, error) {
	params := url.Values{}
	params.Set("receiver_id", eq(receiverID))

	var shares []repository.Share
	if err := r.client.get(ctx, "shares", params, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

func (r *ShareRepository) Create(ctx context.Context, share *repository.Share) error {
	return r.client.insert(ctx, "shares", share)
}

func (r *ShareRepository) DeleteByPost(ctx context.Context, postID string) error {
	params := url.Values{}
	params.Set("post_id", eq(postID))
	return r.client.remove(ctx, "shares", params)
}
