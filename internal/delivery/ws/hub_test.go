package ws

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budie/internal/domain/service"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_BroadcastToEmptyRoomIsDropped(t *testing.T) {
	hub := newTestHub()

	err := hub.Broadcast(context.Background(), uuid.New(), service.TaskEvent{
		Event: service.TaskEventCreated,
		Data:  map[string]any{"task": "x"},
	})

	assert.NoError(t, err)
}

func TestHub_BroadcastReachesOwnRoomOnly(t *testing.T) {
	hub := newTestHub()
	owner := uuid.New()
	stranger := uuid.New()

	ownerClient := newClient(hub, owner, nil)
	strangerClient := newClient(hub, stranger, nil)
	hub.join(ownerClient)
	hub.join(strangerClient)

	err := hub.Broadcast(context.Background(), owner, service.TaskEvent{
		Event: service.TaskEventCreated,
		Data:  map[string]any{"task": map[string]any{"title": "hello"}},
	})
	require.NoError(t, err)

	select {
	case payload := <-ownerClient.send:
		var event struct {
			Event string         `json:"event"`
			Data  map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, "task:created", event.Event)
		assert.Contains(t, event.Data, "task")
	default:
		t.Fatal("expected owner to receive the event")
	}

	select {
	case <-strangerClient.send:
		t.Fatal("stranger must not receive another user's event")
	default:
	}
}

func TestHub_AllSessionsOfUserReceive(t *testing.T) {
	hub := newTestHub()
	owner := uuid.New()

	first := newClient(hub, owner, nil)
	second := newClient(hub, owner, nil)
	hub.join(first)
	hub.join(second)
	assert.Equal(t, 2, hub.roomSize(owner))

	err := hub.Broadcast(context.Background(), owner, service.TaskEvent{
		Event: service.TaskEventCompleted,
	})
	require.NoError(t, err)

	assert.Len(t, first.send, 1)
	assert.Len(t, second.send, 1)
}

func TestHub_LeaveEmptiesRoom(t *testing.T) {
	hub := newTestHub()
	owner := uuid.New()

	client := newClient(hub, owner, nil)
	hub.join(client)
	require.Equal(t, 1, hub.roomSize(owner))

	hub.leave(client)
	assert.Equal(t, 0, hub.roomSize(owner))

	// Leaving twice is harmless.
	hub.leave(client)

	// The send channel is closed on leave so the write pump exits.
	_, open := <-client.send
	assert.False(t, open)

	err := hub.Broadcast(context.Background(), owner, service.TaskEvent{
		Event: service.TaskEventDeleted,
	})
	assert.NoError(t, err)
}

func TestHub_BroadcastDuringLeaveDoesNotPanic(t *testing.T) {
	hub := newTestHub()
	owner := uuid.New()

	client := newClient(hub, owner, nil)
	hub.join(client)

	// Drain until leave closes the channel so the send buffer never fills.
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for range client.send {
		}
	}()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = hub.Broadcast(context.Background(), owner, service.TaskEvent{
				Event: service.TaskEventUpdated,
			})
		}
	}()
	go func() {
		defer wg.Done()
		hub.leave(client)
	}()

	wg.Wait()
	<-drained
	assert.Equal(t, 0, hub.roomSize(owner))
}
