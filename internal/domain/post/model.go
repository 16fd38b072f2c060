package post

import "time"

// Post is a brew ready for display: backend content plus denormalized
// author data and the viewer's like state.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Author    string    `json:"author"`
	Handle    string    `json:"handle"`
	AvatarURL string    `json:"avatar_url"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	Likes     int       `json:"likes"`
	Shares    int       `json:"shares"`
	Liked     bool      `json:"liked"`
	CreatedAt time.Time `json:"created_at"`
	Comments  []Comment `json:"comments"`
}

// Comment is a reply on a post, ready for display.
type Comment struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
