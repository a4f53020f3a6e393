package services

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// relayClient pairs a socket with a write lock. Reads stay on the owning
// goroutine; writes come from every other client's read loop plus HTTP
// handlers, and the websocket library forbids concurrent writers.
type relayClient struct {
	conn *websocket.Conn

	writeMu sync.Mutex
}

func (rc *relayClient) writeJSON(v interface{}) error {
	rc.writeMu.Lock()
	defer rc.writeMu.Unlock()
	return rc.conn.WriteJSON(v)
}

// RelayHub is the server side of the realtime channel: it holds one socket
// per connected user and reflects validated envelopes to every other
// connection. It implements Broadcaster so local mutations can be pushed to
// connected clients too.
type RelayHub struct {
	presence *PresenceService

	mu    sync.RWMutex
	conns map[string]*relayClient
}

func NewRelayHub(presence *PresenceService) *RelayHub {
	return &RelayHub{
		presence: presence,
		conns:    make(map[string]*relayClient),
	}
}

// HandleConnection services a single client socket until it disconnects.
// Intended to run as the gofiber websocket handler.
func (h *RelayHub) HandleConnection(userID string, conn *websocket.Conn) {
	h.register(userID, conn)
	defer h.unregister(userID, conn)

	h.presence.MarkOnline(userID)
	h.broadcastExcept(NewEnvelope(EventUserOnline, map[string]string{"userId": userID}, userID), userID)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		env, ok := DecodeEnvelope(raw)
		if !ok {
			continue
		}
		if env.UserID == "" {
			env.UserID = userID
		}
		h.broadcastExcept(env, userID)
	}
}

func (h *RelayHub) register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	if old, ok := h.conns[userID]; ok && old.conn != conn {
		_ = old.conn.Close()
	}
	h.conns[userID] = &relayClient{conn: conn}
	h.mu.Unlock()
	log.Printf("[relay] %s connected", userID)
}

func (h *RelayHub) unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	if cur, ok := h.conns[userID]; ok && cur.conn == conn {
		delete(h.conns, userID)
	}
	h.mu.Unlock()

	h.presence.MarkOffline(userID)
	h.broadcastExcept(NewEnvelope(EventUserOffline, map[string]string{"userId": userID}, userID), userID)
	log.Printf("[relay] %s disconnected", userID)
}

// Broadcast pushes an envelope to every connected client. Write failures are
// logged and otherwise ignored; delivery is best-effort.
func (h *RelayHub) Broadcast(env Envelope) {
	h.broadcastExcept(env, "")
}

func (h *RelayHub) broadcastExcept(env Envelope, skipUserID string) {
	h.mu.RLock()
	targets := make(map[string]*relayClient, len(h.conns))
	for id, client := range h.conns {
		if id != skipUserID {
			targets[id] = client
		}
	}
	h.mu.RUnlock()

	for id, client := range targets {
		if err := client.writeJSON(env); err != nil {
			log.Printf("[relay] write to %s: %v", id, err)
		}
	}
}

// ConnectedUsers lists the users currently holding an open socket.
func (h *RelayHub) ConnectedUsers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.conns))
	for id := range h.conns {
		ids = append(ids, id)
	}
	return ids
}
