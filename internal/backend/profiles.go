package backend

import (
	"context"
	"net/url"

	"github.com/twcoffee/wavegram/internal/repository"
)

// ProfileRepository implements repository.ProfileRepository over the backend.
type ProfileRepository struct {
	client *Client
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(client *Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

func (r *ProfileRepository) Get(ctx context.Context, id string) (*repository.Profile, error) {
	params := url.Values{}
	params.Set("id", eq(id))

	var profiles []repository.Profile
	if err := r.client.get(ctx, "profiles", params, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, repository.ErrNotFound
	}
	return &profiles[0], nil
}

func (r *ProfileRepository) GetByIDs(ctx context.Context, ids []string) ([]repository.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	params := url.Values{}
	params.Set("id", in(ids))

	var profiles []repository.Profile
	if err := r.client.get(ctx, "profiles", params, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]repository.Profile, error) {
	params := url.Values{}
	params.Set("order", "full_name.asc")

	var profiles []repository.Profile
	if err := r.client.get(ctx, "profiles", params, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
