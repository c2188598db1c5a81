// Package ws provides the real-time task event channel. Connected
// clients join a per-user room and receive events for their own task
// mutations only.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"budie/internal/domain/service"
)

// Hub tracks connected clients grouped into per-user rooms and fans
// task events out to them. It implements service.TaskBroadcaster.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[uuid.UUID]map[*Client]struct{}
	logger *slog.Logger
}

// NewHub is the constructor for Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[uuid.UUID]map[*Client]struct{}),
		logger: logger,
	}
}

// join adds a client to its user's room, creating the room on first join.
func (h *Hub) join(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[client.userID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[client.userID] = room
	}
	room[client] = struct{}{}

	h.logger.Debug("Socket joined room",
		slog.Any("userID", client.userID),
		slog.Int("roomSize", len(room)),
	)
}

// leave removes a client and deletes the room once it empties.
func (h *Hub) leave(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[client.userID]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}

	delete(room, client)
	close(client.send)
	if len(room) == 0 {
		delete(h.rooms, client.userID)
	}

	h.logger.Debug("Socket left room", slog.Any("userID", client.userID))
}

// roomSize reports the number of clients joined to a user's room.
func (h *Hub) roomSize(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[userID])
}

// Broadcast delivers an event to every client in the user's room.
// Delivery is best effort: an empty room drops the event, and a client
// whose send buffer is full is disconnected rather than blocking the
// caller. Sends happen under the read lock: leave closes the send
// channel under the write lock, so a channel can never be closed while
// a send to it is in flight.
func (h *Hub) Broadcast(ctx context.Context, userID uuid.UUID, event service.TaskEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal task event")
	}

	var slow []*Client

	h.mu.RLock()
	for client := range h.rooms[userID] {
		select {
		case client.send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	// Slow consumers are dropped outside the read lock; leave needs the
	// write lock and is a no-op for clients already gone.
	for _, client := range slow {
		h.logger.Warn("Dropping slow socket client", slog.Any("userID", userID))
		h.leave(client)
		client.conn.Close()
	}

	return nil
}
