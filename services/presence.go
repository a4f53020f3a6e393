package services

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

const onlineUsersKey = "online_users"

// PresenceService tracks which users currently hold an open realtime
// connection. State is process-local and authoritative; when a redis client
// is supplied the set is mirrored there so other processes can read it.
type PresenceService struct {
	mu     sync.RWMutex
	online map[string]bool
	rdb    *redis.Client
}

func NewPresenceService(rdb *redis.Client) *PresenceService {
	return &PresenceService{
		online: make(map[string]bool),
		rdb:    rdb,
	}
}

func (s *PresenceService) MarkOnline(userID string) {
	if userID == "" {
		return
	}
	s.mu.Lock()
	s.online[userID] = true
	s.mu.Unlock()

	if s.rdb != nil {
		if err := s.rdb.SAdd(context.Background(), onlineUsersKey, userID).Err(); err != nil {
			log.Printf("[presence] redis SAdd: %v", err)
		}
	}
}

func (s *PresenceService) MarkOffline(userID string) {
	if userID == "" {
		return
	}
	s.mu.Lock()
	delete(s.online, userID)
	s.mu.Unlock()

	if s.rdb != nil {
		if err := s.rdb.SRem(context.Background(), onlineUsersKey, userID).Err(); err != nil {
			log.Printf("[presence] redis SRem: %v", err)
		}
	}
}

func (s *PresenceService) IsOnline(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.online[userID]
}

func (s *PresenceService) OnlineUsers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.online))
	for id := range s.online {
		ids = append(ids, id)
	}
	return ids
}
