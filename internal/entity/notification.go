package entity

import "time"

// Notification is an immutable record of a social event directed at a user.
// Rows are only ever appended; there is no read/unread state and no deletion.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	ActorID     string    `json:"actor_id"`
	Verb        string    `json:"verb"`
	PostID      string    `json:"post_id"`
	CreatedAt   time.Time `json:"created_at"`
}

const VerbLikedPost = "liked your post"
