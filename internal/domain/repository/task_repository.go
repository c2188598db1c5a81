package repository

import (
	"context"
	"errors"

	"budie/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when a task does not exist or is not owned by
// the requesting user. The two cases are deliberately indistinguishable.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
// Every read and mutation is scoped by the owning user ID.
type TaskRepository interface {
	// FindByID retrieves a single task scoped by (id, ownerID).
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error)

	// List retrieves tasks for a user matching the filter, newest first,
	// together with the total count for pagination.
	List(ctx context.Context, ownerID uuid.UUID, filter entity.TaskFilter, page entity.Page) ([]*entity.Task, int64, error)

	// Create persists a new task.
	Create(ctx context.Context, task *entity.Task) error

	// Update modifies an existing task scoped by (task.ID, task.UserID).
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task scoped by (id, ownerID).
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
