package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"guitar-learning-system/models"
)

// CreateChatInput carries the participant lists for a new chat. Participants
// exclude the creator; the creator is always added.
type CreateChatInput struct {
	Participants         []string
	ParticipantNames     []string
	ParticipantUsernames []string
	GroupName            string
}

// CreateChat opens a conversation for the creator and the given
// participants. A private chat with one other user is deduplicated: if a
// chat with exactly the same participant set already exists it is returned
// instead of creating a new one. Group chats are always new, and a named
// group gets a system message announcing its creation.
func (s *SocialService) CreateChat(creatorID string, in CreateChatInput) (*models.Chat, error) {
	if len(in.Participants) == 0 {
		return nil, ErrNoParticipants
	}

	var creator models.User
	if err := s.DB.First(&creator, "id = ?", creatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	participants := append([]string{creator.ID}, in.Participants...)
	names := append([]string{creator.Name}, in.ParticipantNames...)
	usernames := append([]string{creator.Username}, in.ParticipantUsernames...)

	isGroup := len(in.Participants) > 1 || in.GroupName != ""
	if !isGroup {
		if existing, err := s.findPrivateChat(participants); err != nil {
			return nil, err
		} else if existing != nil {
			return existing, nil
		}
	}

	chatType := models.ChatTypePrivate
	if isGroup {
		chatType = models.ChatTypeGroup
	}
	now := time.Now().UTC()
	chat := models.Chat{
		ID:                   "chat_" + uuid.NewString(),
		Type:                 chatType,
		Name:                 in.GroupName,
		Participants:         participants,
		ParticipantNames:     names,
		ParticipantUsernames: usernames,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&chat).Error; err != nil {
			return err
		}
		if isGroup && in.GroupName != "" {
			sys := models.ChatMessage{
				ID:         "msg_" + uuid.NewString(),
				ChatID:     chat.ID,
				SenderID:   models.SystemSenderID,
				SenderName: "System",
				Content:    fmt.Sprintf("%s created the group %q", creator.Name, in.GroupName),
				Timestamp:  now,
				Type:       models.MessageTypeSystem,
			}
			if err := tx.Create(&sys).Error; err != nil {
				return err
			}
			chat.LastMessage = &sys
			return tx.Save(&chat).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mirror(EventChatCreated, chat, creatorID)
	return &chat, nil
}

// findPrivateChat scans private chats for one whose participant set matches
// exactly. Participant lists are JSON columns, so the comparison happens
// in-process.
func (s *SocialService) findPrivateChat(participants []string) (*models.Chat, error) {
	var chats []models.Chat
	if err := s.DB.Where("type = ?", models.ChatTypePrivate).Find(&chats).Error; err != nil {
		return nil, err
	}
	want := make(map[string]bool, len(participants))
	for _, id := range participants {
		want[id] = true
	}
	for i := range chats {
		if len(chats[i].Participants) != len(want) {
			continue
		}
		match := true
		for _, id := range chats[i].Participants {
			if !want[id] {
				match = false
				break
			}
		}
		if match {
			return &chats[i], nil
		}
	}
	return nil, nil
}

// Chats returns the conversations the user participates in, most recently
// active first.
func (s *SocialService) Chats(userID string) ([]models.Chat, error) {
	var all []models.Chat
	if err := s.DB.Order("updated_at DESC").Find(&all).Error; err != nil {
		return nil, err
	}
	chats := make([]models.Chat, 0, len(all))
	for i := range all {
		if all[i].HasParticipant(userID) {
			chats = append(chats, all[i])
		}
	}
	return chats, nil
}

// SendMessage appends a message to a chat and bumps the chat's last-message
// pointer. Blank content is rejected.
func (s *SocialService) SendMessage(senderID, chatID, content string) (*models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	var chat models.Chat
	if err := s.DB.First(&chat, "id = ?", chatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}

	var sender models.User
	if err := s.DB.First(&sender, "id = ?", senderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	msg := models.ChatMessage{
		ID:             "msg_" + uuid.NewString(),
		ChatID:         chat.ID,
		SenderID:       sender.ID,
		SenderName:     sender.Name,
		SenderUsername: sender.Username,
		Content:        content,
		Timestamp:      time.Now().UTC(),
		Type:           models.MessageTypeText,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}
		chat.LastMessage = &msg
		chat.UpdatedAt = msg.Timestamp
		return tx.Save(&chat).Error
	})
	if err != nil {
		return nil, err
	}

	s.mirror(EventMessage, msg, senderID)
	return &msg, nil
}

// ChatMessages returns a chat's messages in chronological order.
func (s *SocialService) ChatMessages(chatID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.DB.Where("chat_id = ?", chatID).Order("timestamp ASC").Find(&msgs).Error
	return msgs, err
}

// ApplyRemoteMessage merges a message received from the channel. Messages
// without a chat id or content are dropped; known ids are kept as-is.
func (s *SocialService) ApplyRemoteMessage(msg models.ChatMessage) {
	if msg.ChatID == "" || strings.TrimSpace(msg.Content) == "" {
		return
	}
	if msg.ID == "" {
		msg.ID = "msg_" + uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	if msg.Type == "" {
		msg.Type = models.MessageTypeText
	}

	var existing models.ChatMessage
	err := s.DB.First(&existing, "id = ?", msg.ID).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}

	if err := s.DB.Create(&msg).Error; err != nil {
		return
	}

	// Bump the chat's last message when the chat is known locally.
	var chat models.Chat
	if err := s.DB.First(&chat, "id = ?", msg.ChatID).Error; err == nil {
		if chat.LastMessage == nil || !chat.LastMessage.Timestamp.After(msg.Timestamp) {
			chat.LastMessage = &msg
			chat.UpdatedAt = msg.Timestamp
			_ = s.DB.Save(&chat).Error
		}
	}
}

// ApplyRemoteChat merges a chat received from the channel. Chats without an
// id or participants are dropped; known ids are kept as-is.
func (s *SocialService) ApplyRemoteChat(chat models.Chat) {
	if chat.ID == "" || len(chat.Participants) == 0 {
		return
	}
	var existing models.Chat
	err := s.DB.First(&existing, "id = ?", chat.ID).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if chat.Type == "" {
		chat.Type = models.ChatTypePrivate
	}
	now := time.Now().UTC()
	if chat.CreatedAt.IsZero() {
		chat.CreatedAt = now
	}
	if chat.UpdatedAt.IsZero() {
		chat.UpdatedAt = now
	}
	_ = s.DB.Create(&chat).Error
}
