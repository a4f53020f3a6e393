package models

import "time"

const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestDeclined = "declined"
)

// FriendRequest records one request from sender to addressee.
// Status transitions pending→accepted or pending→declined exactly once;
// requests are never deleted. At most one pending request exists per
// ordered (from, to) pair.
type FriendRequest struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	FromUserID   string    `gorm:"index;not null" json:"fromUserId"`
	FromUserName string    `json:"fromUserName"`
	FromUsername string    `json:"fromUsername"`
	ToUserID     string    `gorm:"index;not null" json:"toUserId"`
	ToUserName   string    `json:"toUserName"`
	ToUsername   string    `json:"toUsername"`
	Status       string    `gorm:"default:pending" json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

// Friend is one directed edge of an accepted friendship. Accepting a request
// inserts both directions so each party sees the other in their friend set.
type Friend struct {
	ID       string    `gorm:"primaryKey" json:"id"`
	UserID   string    `gorm:"not null;uniqueIndex:idx_friend_edge" json:"user_id"`
	FriendID string    `gorm:"not null;uniqueIndex:idx_friend_edge" json:"friend_id"`
	Since    time.Time `json:"since"`
}
