package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"budie/internal/domain/entity"
)

// --- Input DTOs ---

// CreateTaskInput defines the data required to create a task.
type CreateTaskInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=urgent high medium low"`
	DueDate     *time.Time `json:"dueDate"`
	Category    string     `json:"category" validate:"omitempty,oneof=work personal family"`
	CreatedBy   string     `json:"createdBy" validate:"omitempty,oneof=user ai-suggestion"`
}

// UpdateTaskInput defines a partial task update. Nil fields are left
// untouched.
type UpdateTaskInput struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=urgent high medium low"`
	DueDate     *time.Time `json:"dueDate"`
	Category    *string    `json:"category" validate:"omitempty,oneof=work personal family"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending in-progress completed cancelled"`
}

// ListTasksInput carries list filters and pagination, bound from query
// parameters.
type ListTasksInput struct {
	Statuses   []string `query:"status" validate:"omitempty,dive,oneof=pending in-progress completed cancelled"`
	Priorities []string `query:"priority" validate:"omitempty,dive,oneof=urgent high medium low"`
	Categories []string `query:"category" validate:"omitempty,dive,oneof=work personal family"`
	Search     string   `query:"search" validate:"omitempty,max=200"`
	Page       int      `query:"page" validate:"omitempty,min=1"`
	Limit      int      `query:"limit" validate:"omitempty,min=1,max=100"`
}

// --- Output DTOs ---

// TaskDTO is the outward-facing task representation.
type TaskDTO struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Category    string     `json:"category"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTaskDTO maps a domain task to its outward representation.
func NewTaskDTO(task *entity.Task) *TaskDTO {
	if task == nil {
		return nil
	}

	return &TaskDTO{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		Category:    string(task.Category),
		Status:      string(task.Status),
		CompletedAt: task.CompletedAt,
		CreatedBy:   string(task.CreatedBy),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// Pagination describes the window a task listing covers.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ListTasksOutput returns a page of tasks with pagination totals.
type ListTasksOutput struct {
	Tasks      []*TaskDTO `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}

// TaskUsecase defines the interface for task business operations. All
// operations act on behalf of an owner; tasks outside the owner's scope
// are reported as not found.
type TaskUsecase interface {
	List(ctx context.Context, ownerID uuid.UUID, input *ListTasksInput) (*ListTasksOutput, error)
	Get(ctx context.Context, ownerID, taskID uuid.UUID) (*TaskDTO, error)
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateTaskInput) (*TaskDTO, error)
	Update(ctx context.Context, ownerID, taskID uuid.UUID, input *UpdateTaskInput) (*TaskDTO, error)
	Delete(ctx context.Context, ownerID, taskID uuid.UUID) error
	Complete(ctx context.Context, ownerID, taskID uuid.UUID) (*TaskDTO, error)
}
