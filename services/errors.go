package services

import "errors"

// User-facing failure modes. Handlers map these to HTTP statuses; everything
// else is an internal error.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyFriends     = errors.New("already friends with this user")
	ErrDuplicateRequest   = errors.New("friend request already sent")
	ErrRequestNotFound    = errors.New("friend request not found")
	ErrRequestNotPending  = errors.New("friend request already resolved")
	ErrChatNotFound       = errors.New("chat not found")
	ErrPostNotFound       = errors.New("community post not found")
	ErrEmptyContent       = errors.New("content must not be empty")
	ErrNoParticipants     = errors.New("chat needs at least one other participant")
	ErrUnknownContentKind = errors.New("unknown content kind")

	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
	ErrBadPreferences     = errors.New("must select exactly 3 music preferences")
	ErrInvalidLevel       = errors.New("unknown level")
)
