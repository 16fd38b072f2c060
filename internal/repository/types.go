package repository

import "time"

// Post is a content record ("brew") as stored by the backend.
type Post struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"user_id"`
	Content    string    `json:"content"`
	ImageURL   string    `json:"image,omitempty"`
	LikesCount int       `json:"likes_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// TimelinePost is a post with its embedded interaction data, as returned
// by the timeline query.
type TimelinePost struct {
	Post
	Author      *Profile  `json:"profiles,omitempty"`
	Comments    []Comment `json:"comments"`
	LikeUserIDs []string  `json:"-"`
	ShareCount  int       `json:"-"`
}

// Like is a "sip" record on a post.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	ActorID   string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a reply on a post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	ActorID   string    `json:"user_id"`
	Body      string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Share is a post forwarded from one user to another.
type Share struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Profile is a user profile record.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"full_name"`
	Handle      string `json:"username"`
	AvatarURL   string `json:"avatar_url"`
}
