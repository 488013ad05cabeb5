package entity

import "time"

type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedItem is a post enriched with author info and like state for the
// requesting user.
type FeedItem struct {
	Post
	AuthorUsername string `json:"author_username"`
	AuthorAvatar   string `json:"author_avatar"`
	LikesCount     int64  `json:"likes_count"`
	IsLiked        bool   `json:"is_liked"`
}
