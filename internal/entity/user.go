package entity

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the public view of a user, with follow-graph counters attached.
type Profile struct {
	User
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}
