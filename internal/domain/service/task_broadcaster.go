package service

import (
	"context"

	"github.com/google/uuid"
)

// TaskEventType names the real-time events emitted after task mutations.
type TaskEventType string

const (
	TaskEventCreated   TaskEventType = "task:created"
	TaskEventUpdated   TaskEventType = "task:updated"
	TaskEventDeleted   TaskEventType = "task:deleted"
	TaskEventCompleted TaskEventType = "task:completed"
)

// TaskEvent is an ephemeral broadcast unit. It is never persisted; its
// lifecycle is a single fan-out call.
type TaskEvent struct {
	Event TaskEventType `json:"event"`
	Data  any           `json:"data"`
}

// TaskBroadcaster pushes task events to all live sessions of a user.
// Fan-out is best-effort: if the user has no joined session the event is
// dropped, and delivery failure never propagates to the caller's response.
type TaskBroadcaster interface {
	// Broadcast sends the event to the room of the given user.
	Broadcast(ctx context.Context, userID uuid.UUID, event TaskEvent) error
}
