package services

import (
	"bytes"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// EventType is the closed set of realtime event kinds. Anything else on the
// wire is discarded.
type EventType string

const (
	EventMessage       EventType = "message"
	EventFriendRequest EventType = "friend_request"
	EventFriendAccept  EventType = "friend_accept"
	EventCommunityPost EventType = "community_post"
	EventUserOnline    EventType = "user_online"
	EventUserOffline   EventType = "user_offline"
	EventChatCreated   EventType = "chat_created"
)

func (t EventType) Valid() bool {
	switch t {
	case EventMessage, EventFriendRequest, EventFriendAccept, EventCommunityPost,
		EventUserOnline, EventUserOffline, EventChatCreated:
		return true
	}
	return false
}

// Envelope is the wire format of the realtime channel: at-most-once,
// best-effort, no acks, no ordering.
type Envelope struct {
	Type      EventType       `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
	UserID    string          `json:"userId,omitempty"`
}

// NewEnvelope wraps a payload for sending. Marshal failures produce an
// envelope with empty data, which receivers will drop.
func NewEnvelope(t EventType, data interface{}, userID string) Envelope {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("[realtime] marshal %s payload: %v", t, err)
		raw = nil
	}
	return Envelope{
		Type:      t,
		Data:      raw,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		UserID:    userID,
	}
}

// DecodeEnvelope parses and defensively validates an inbound payload.
// The relay may reflect arbitrary traffic; anything that is not a
// well-formed envelope with a recognized type, present data and timestamp
// is discarded without error.
func DecodeEnvelope(raw []byte) (Envelope, bool) {
	var env Envelope
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return env, false
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return env, false
	}
	if !env.Type.Valid() || env.Timestamp == "" {
		return env, false
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return env, false
	}
	return env, true
}

// decodeInto unmarshals an envelope's payload into the expected shape for
// its type.
func decodeInto(env Envelope, v interface{}) error {
	return json.Unmarshal(env.Data, v)
}

// Broadcaster mirrors a local mutation onto a realtime channel,
// fire-and-forget.
type Broadcaster interface {
	Broadcast(env Envelope)
}

// MultiBroadcaster fans one mutation out to several channels.
type MultiBroadcaster []Broadcaster

func (m MultiBroadcaster) Broadcast(env Envelope) {
	for _, b := range m {
		b.Broadcast(env)
	}
}

// EventSink receives validated inbound events. The social service implements
// it; tests can substitute their own.
type EventSink interface {
	HandleEvent(env Envelope)
}

// Connection lifecycle states of the sync channel.
type ChannelState int32

const (
	StateDisconnected ChannelState = iota
	StateConnecting
	StateConnected
)

// SyncChannel is the client side of the realtime sync channel: it dials an
// upstream relay, announces presence, mirrors local mutations outward and
// feeds validated inbound events to the sink. It is explicitly constructed
// and injected, never a process-wide singleton, so tests can run isolated
// instances.
type SyncChannel struct {
	url    string
	userID string
	sink   EventSink

	maxReconnectAttempts int
	reconnectDelay       time.Duration

	mu                sync.Mutex
	conn              *websocket.Conn
	state             ChannelState
	reconnectAttempts int
	closed            bool

	// writeMu serializes socket writes; gorilla forbids concurrent writers
	// on one connection.
	writeMu sync.Mutex
}

func NewSyncChannel(url, userID string, sink EventSink) *SyncChannel {
	return &SyncChannel{
		url:                  url,
		userID:               userID,
		sink:                 sink,
		maxReconnectAttempts: 5,
		reconnectDelay:       time.Second,
	}
}

// Open dials the relay. On success it announces the local user as online and
// starts the read loop. A failed dial leaves the channel disconnected: the
// store keeps working in local-only mode.
func (c *SyncChannel) Open() bool {
	c.mu.Lock()
	if c.closed || c.state != StateDisconnected {
		c.mu.Unlock()
		return c.state == StateConnected
	}
	c.state = StateConnecting
	c.mu.Unlock()

	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		log.Printf("[realtime] connect to %s failed: %v", c.url, err)
		c.mu.Lock()
		c.state = StateDisconnected
		c.mu.Unlock()
		return false
	}

	c.mu.Lock()
	c.conn = conn
	c.state = StateConnected
	c.reconnectAttempts = 0
	c.mu.Unlock()

	log.Printf("[realtime] connected to %s", c.url)
	c.Broadcast(NewEnvelope(EventUserOnline, map[string]string{"userId": c.userID}, c.userID))

	go c.readLoop(conn)
	return true
}

// Close shuts the channel down for good; no reconnect is attempted.
func (c *SyncChannel) Close() {
	c.mu.Lock()
	c.closed = true
	conn := c.conn
	c.conn = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

// State reports the current lifecycle state.
func (c *SyncChannel) State() ChannelState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Broadcast sends fire-and-forget. When the channel is not connected the
// message is silently dropped: no queueing, no delivery guarantee. Local
// state is always mutated first, sync is only a mirror.
func (c *SyncChannel) Broadcast(env Envelope) {
	c.mu.Lock()
	conn := c.conn
	connected := c.state == StateConnected
	c.mu.Unlock()

	if !connected || conn == nil {
		return
	}
	c.writeMu.Lock()
	err := conn.WriteJSON(env)
	c.writeMu.Unlock()
	if err != nil {
		log.Printf("[realtime] send failed: %v", err)
	}
}

func (c *SyncChannel) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			c.handleClose(conn)
			return
		}
		env, ok := DecodeEnvelope(raw)
		if !ok {
			continue
		}
		// Ignore reflections of our own traffic.
		if env.UserID == c.userID {
			continue
		}
		if c.sink != nil {
			c.sink.HandleEvent(env)
		}
	}
}

func (c *SyncChannel) handleClose(conn *websocket.Conn) {
	_ = conn.Close()

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
		c.state = StateDisconnected
	}
	closed := c.closed
	c.mu.Unlock()

	if closed {
		return
	}
	log.Println("[realtime] connection lost")
	go c.attemptReconnect()
}

// attemptReconnect retries with a delay that scales linearly with the attempt
// count, then gives up silently: the session continues in local-only mode.
func (c *SyncChannel) attemptReconnect() {
	for {
		c.mu.Lock()
		if c.closed || c.state != StateDisconnected || c.reconnectAttempts >= c.maxReconnectAttempts {
			c.mu.Unlock()
			return
		}
		c.reconnectAttempts++
		attempt := c.reconnectAttempts
		c.mu.Unlock()

		time.Sleep(c.reconnectDelay * time.Duration(attempt))
		log.Printf("[realtime] reconnecting... (%d/%d)", attempt, c.maxReconnectAttempts)
		if c.Open() {
			return
		}
	}
}
