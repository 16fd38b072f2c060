package backend

import (
	"context"
	"net/url"

	"github.com/twcoffee/wavegram/internal/repository"
)

const timelineSelect = "*,profiles(id,full_name,username,avatar_url),comments(id,post_id,user_id,content,created_at),likes(user_id),shares(id)"

// PostRepository implements repository.PostRepository over the backend.
type PostRepository struct {
	client *Client
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(client *Client) *PostRepository {
	return &PostRepository{client: client}
}

func (r *PostRepository) ListByOwner(ctx context.Context, ownerID string) ([]repository.Post, error) {
	params := url.Values{}
	params.Set("select", "id,user_id,content,image,likes_count,created_at")
	params.Set("user_id", eq(ownerID))

	var posts []repository.Post
	if err := r.client.get(ctx, "posts", params, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) GetByIDs(ctx context.Context, ids []string) ([]repository.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	params := url.Values{}
	params.Set("select", "id,user_id,content,image,likes_count,created_at")
	params.Set("id", in(ids))

	var posts []repository.Post
	if err := r.client.get(ctx, "posts", params, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

type timelineRow struct {
	repository.Post
	Profiles *repository.Profile  `json:"profiles"`
	Comments []repository.Comment `json:"comments"`
	Likes    []struct {
		UserID string `json:"user_id"`
	} `json:"likes"`
	Shares []struct {
		ID string `json:"id"`
	} `json:"shares"`
}

func (r *PostRepository) ListTimeline(ctx context.Context) ([]repository.TimelinePost, error) {
	params := url.Values{}
	params.Set("select", timelineSelect)
	params.Set("order", "created_at.desc")

	var rows []timelineRow
	if err := r.client.get(ctx, "posts", params, &rows); err != nil {
		return nil, err
	}

	posts := make([]repository.TimelinePost, 0, len(rows))
	for _, row := range rows {
		tp := repository.TimelinePost{
			Post:       row.Post,
			Author:     row.Profiles,
			Comments:   row.Comments,
			ShareCount: len(row.Shares),
		}
		for _, like := range row.Likes {
			tp.LikeUserIDs = append(tp.LikeUserIDs, like.UserID)
		}
		posts = append(posts, tp)
	}
	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, post *repository.Post) error {
	return r.client.insert(ctx, "posts", post)
}

func (r *PostRepository) Update(ctx context.Context, id, content, imageURL string) error {
	params := url.Values{}
	params.Set("id", eq(id))

	body := map[string]string{"content": content}
	if imageURL != "" {
		body["image"] = imageURL
	}
	return r.client.patch(ctx, "posts", params, body)
}

func (r *PostRepository) Delete(ctx context.Context, id, ownerID string) error {
	params := url.Values{}
	params.Set("id", eq(id))
	params.Set("user_id", eq(ownerID))
	return r.client.remove(ctx, "posts", params)
}
