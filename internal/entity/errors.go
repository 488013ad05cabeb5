package entity

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; none of them is
// fatal to the process.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")

	// Like state machine
	ErrAlreadyLiked = errors.New("post already liked")
	ErrNotLiked     = errors.New("post not liked")

	// Follow graph
	ErrSelfFollow = errors.New("cannot follow yourself")

	// Authorship policy: only the author may edit or delete content
	ErrForbidden = errors.New("not the author of this content")

	// Registration / login
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
