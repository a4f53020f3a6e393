package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"guitar-learning-system/models"
)

// SocialService owns the social state: friend requests, friendships, chats,
// messages and community posts. Every mutation persists locally first and is
// then mirrored over the realtime channel, fire-and-forget.
type SocialService struct {
	DB          *gorm.DB
	Presence    *PresenceService
	broadcaster Broadcaster
}

func NewSocialService(db *gorm.DB, presence *PresenceService) *SocialService {
	return &SocialService{DB: db, Presence: presence}
}

// SetBroadcaster wires the realtime mirror. A nil broadcaster means
// local-only mode; all operations still work.
func (s *SocialService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

func (s *SocialService) mirror(t EventType, data interface{}, userID string) {
	if s.broadcaster == nil {
		return
	}
	s.broadcaster.Broadcast(NewEnvelope(t, data, userID))
}

// SendFriendRequest creates a pending request from the caller to the user
// with the given username. Duplicate pending requests and existing
// friendships are rejected.
func (s *SocialService) SendFriendRequest(fromUserID, toUsername string) (*models.FriendRequest, error) {
	var from models.User
	if err := s.DB.First(&from, "id = ?", fromUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var to models.User
	if err := s.DB.First(&to, "username = ?", toUsername).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var edgeCount int64
	if err := s.DB.Model(&models.Friend{}).
		Where("user_id = ? AND friend_id = ?", from.ID, to.ID).
		Count(&edgeCount).Error; err != nil {
		return nil, err
	}
	if edgeCount > 0 {
		return nil, ErrAlreadyFriends
	}

	var pendingCount int64
	if err := s.DB.Model(&models.FriendRequest{}).
		Where("from_user_id = ? AND to_user_id = ? AND status = ?", from.ID, to.ID, models.FriendRequestPending).
		Count(&pendingCount).Error; err != nil {
		return nil, err
	}
	if pendingCount > 0 {
		return nil, ErrDuplicateRequest
	}

	req := models.FriendRequest{
		ID:           "request_" + uuid.NewString(),
		FromUserID:   from.ID,
		FromUserName: from.Name,
		FromUsername: from.Username,
		ToUserID:     to.ID,
		ToUserName:   to.Name,
		ToUsername:   to.Username,
		Status:       models.FriendRequestPending,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.DB.Create(&req).Error; err != nil {
		return nil, err
	}

	s.mirror(EventFriendRequest, req, from.ID)
	return &req, nil
}

// AcceptFriendRequest resolves a pending request addressed to userID and
// creates the friendship edges in both directions. Accepting an already
// resolved request fails with ErrRequestNotPending.
func (s *SocialService) AcceptFriendRequest(userID, requestID string) (*models.FriendRequest, error) {
	var req models.FriendRequest
	if err := s.DB.First(&req, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.ToUserID != userID {
		return nil, ErrRequestNotFound
	}
	if req.Status != models.FriendRequestPending {
		return nil, ErrRequestNotPending
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		req.Status = models.FriendRequestAccepted
		if err := tx.Save(&req).Error; err != nil {
			return err
		}
		return createFriendEdges(tx, req.FromUserID, req.ToUserID)
	})
	if err != nil {
		return nil, err
	}

	s.mirror(EventFriendAccept, map[string]string{
		"requestId": req.ID,
		"friendId":  req.ToUserID,
	}, userID)
	return &req, nil
}

// createFriendEdges inserts both directed edges, skipping ones that already
// exist so the operation stays idempotent under event replay.
func createFriendEdges(tx *gorm.DB, a, b string) error {
	now := time.Now().UTC()
	for _, pair := range [][2]string{{a, b}, {b, a}} {
		var existing models.Friend
		err := tx.First(&existing, "user_id = ? AND friend_id = ?", pair[0], pair[1]).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		edge := models.Friend{
			ID:       "friend_" + uuid.NewString(),
			UserID:   pair[0],
			FriendID: pair[1],
			Since:    now,
		}
		if err := tx.Create(&edge).Error; err != nil {
			return err
		}
	}
	return nil
}

// DeclineFriendRequest marks a pending request declined. The friends set is
// untouched.
func (s *SocialService) DeclineFriendRequest(userID, requestID string) (*models.FriendRequest, error) {
	var req models.FriendRequest
	if err := s.DB.First(&req, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if req.ToUserID != userID {
		return nil, ErrRequestNotFound
	}
	if req.Status != models.FriendRequestPending {
		return nil, ErrRequestNotPending
	}

	req.Status = models.FriendRequestDeclined
	if err := s.DB.Save(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// FriendRequests returns the pending requests addressed to the user, newest
// first.
func (s *SocialService) FriendRequests(userID string) ([]models.FriendRequest, error) {
	var reqs []models.FriendRequest
	err := s.DB.
		Where("to_user_id = ? AND status = ?", userID, models.FriendRequestPending).
		Order("timestamp DESC").
		Find(&reqs).Error
	return reqs, err
}

// Friends returns the user's friends with live presence annotated.
func (s *SocialService) Friends(userID string) ([]models.User, error) {
	var edges []models.Friend
	if err := s.DB.Where("user_id = ?", userID).Order("since ASC").Find(&edges).Error; err != nil {
		return nil, err
	}
	friends := make([]models.User, 0, len(edges))
	for _, edge := range edges {
		var friend models.User
		if err := s.DB.First(&friend, "id = ?", edge.FriendID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		s.annotatePresence(&friend)
		friends = append(friends, friend)
	}
	return friends, nil
}

// SearchUsers finds users whose username or display name contains the query,
// case-insensitively. A blank query matches nobody. The caller is excluded
// from results.
func (s *SocialService) SearchUsers(callerID, query string) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.User{}, nil
	}
	pattern := "%" + strings.ToLower(query) + "%"

	var users []models.User
	err := s.DB.
		Where("id <> ?", callerID).
		Where("LOWER(username) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern).
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	for i := range users {
		s.annotatePresence(&users[i])
	}
	return users, nil
}

func (s *SocialService) annotatePresence(u *models.User) {
	if s.Presence != nil {
		u.IsOnline = s.Presence.IsOnline(u.ID)
	}
}

// HandleEvent merges a validated inbound realtime event into local state.
// Implements EventSink for the sync channel.
func (s *SocialService) HandleEvent(env Envelope) {
	switch env.Type {
	case EventMessage:
		var msg models.ChatMessage
		if err := decodeInto(env, &msg); err != nil {
			return
		}
		s.ApplyRemoteMessage(msg)
	case EventFriendRequest:
		var req models.FriendRequest
		if err := decodeInto(env, &req); err != nil {
			return
		}
		s.ApplyRemoteFriendRequest(req)
	case EventFriendAccept:
		var data struct {
			RequestID string `json:"requestId"`
			FriendID  string `json:"friendId"`
		}
		if err := decodeInto(env, &data); err != nil {
			return
		}
		s.ApplyRemoteFriendAccept(data.RequestID, data.FriendID)
	case EventCommunityPost:
		var post models.CommunityPost
		if err := decodeInto(env, &post); err != nil {
			return
		}
		s.ApplyRemotePost(post)
	case EventChatCreated:
		var chat models.Chat
		if err := decodeInto(env, &chat); err != nil {
			return
		}
		s.ApplyRemoteChat(chat)
	case EventUserOnline:
		if s.Presence != nil && env.UserID != "" {
			s.Presence.MarkOnline(env.UserID)
		}
	case EventUserOffline:
		if s.Presence != nil && env.UserID != "" {
			s.Presence.MarkOffline(env.UserID)
		}
	}
}

// ApplyRemoteFriendRequest overlays a request received from the channel.
// Requests missing their identity fields are dropped; known ids are left
// untouched so replays stay idempotent.
func (s *SocialService) ApplyRemoteFriendRequest(req models.FriendRequest) {
	if req.ID == "" || req.FromUserID == "" || req.ToUserID == "" {
		return
	}
	var existing models.FriendRequest
	err := s.DB.First(&existing, "id = ?", req.ID).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[social] merge friend request: %v", err)
		return
	}
	if req.Status == "" {
		req.Status = models.FriendRequestPending
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now().UTC()
	}
	if err := s.DB.Create(&req).Error; err != nil {
		log.Printf("[social] merge friend request: %v", err)
	}
}

// ApplyRemoteFriendAccept marks the matching request accepted and unions the
// friendship edges. An unknown request id is ignored.
func (s *SocialService) ApplyRemoteFriendAccept(requestID, friendID string) {
	if requestID == "" {
		return
	}
	var req models.FriendRequest
	if err := s.DB.First(&req, "id = ?", requestID).Error; err != nil {
		return
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if req.Status != models.FriendRequestAccepted {
			req.Status = models.FriendRequestAccepted
			if err := tx.Save(&req).Error; err != nil {
				return err
			}
		}
		return createFriendEdges(tx, req.FromUserID, req.ToUserID)
	})
	if err != nil {
		log.Printf("[social] merge friend accept: %v", err)
	}
}
