package models

import "time"

const (
	ChatTypePrivate = "private"
	ChatTypeGroup   = "group"

	MessageTypeText   = "text"
	MessageTypeSystem = "system"

	// Reserved sender id for synthesized system messages.
	SystemSenderID = "system"
)

// Chat is a private or group conversation. Private chats are deduplicated by
// exact participant set; updatedAt is bumped on every new message.
type Chat struct {
	ID   string `gorm:"primaryKey" json:"id"`
	Type string `gorm:"not null" json:"type"`
	Name string `json:"name,omitempty"` // group chats only

	Participants         []string `gorm:"serializer:json" json:"participants"`
	ParticipantNames     []string `gorm:"serializer:json" json:"participantNames"`
	ParticipantUsernames []string `gorm:"serializer:json" json:"participantUsernames"`

	// Denormalized cache of the newest message for list views.
	LastMessage *ChatMessage `gorm:"serializer:json" json:"lastMessage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasParticipant reports whether the user id is part of the chat.
func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// ChatMessage is immutable once created.
type ChatMessage struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	ChatID         string    `gorm:"index;not null" json:"chatId"`
	SenderID       string    `gorm:"index" json:"senderId"`
	SenderName     string    `json:"senderName"`
	SenderUsername string    `json:"senderUsername"`
	Content        string    `json:"content"`
	Timestamp      time.Time `gorm:"index" json:"timestamp"`
	Type           string    `gorm:"default:text" json:"type"`
}
