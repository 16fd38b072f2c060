package repository

import "context"

// PostRepository queries and mutates content records on the backend.
type PostRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]Post, error)
	GetByIDs(ctx context.Context, ids []string) ([]Post, error)
	ListTimeline(ctx context.Context) ([]TimelinePost, error)
	Create(ctx context.Context, post *Post) error
	Update(ctx context.Context, id, content, imageURL string) error
	Delete(ctx context.Context, id, ownerID string) error
}

// LikeRepository queries and mutates like records.
type LikeRepository interface {
	ListByPosts(ctx context.Context, postIDs []string) ([]Like, error)
	Create(ctx context.Context, like *Like) error
	Delete(ctx context.Context, postID, actorID string) error
	DeleteByPost(ctx context.Context, postID string) error
	IncrementCount(ctx context.Context, postID string) error
	DecrementCount(ctx context.Context, postID string) error
}

// CommentRepository queries and mutates comment records.
type CommentRepository interface {
	ListByPosts(ctx context.Context, postIDs []string) ([]Comment, error)
	Create(ctx context.Context, comment *Comment) error
	DeleteByPost(ctx context.Context, postID string) error
}

// ShareRepository queries and mutates share records.
type ShareRepository interface {
	ListByReceiver(ctx context.Context, receiverID string) ([]Share, error)
	Create(ctx context.Context, share *Share) error
	DeleteByPost(ctx context.Context, postID string) error
}

// ProfileRepository queries user profile records.
type ProfileRepository interface {
	Get(ctx context.Context, id string) (*Profile, error)
	GetByIDs(ctx context.Context, ids []string) ([]Profile, error)
	List(ctx context.Context) ([]Profile, error)
}
