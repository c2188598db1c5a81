package entity

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item owned by exactly one user. All mutations are
// scoped by (ID, UserID) so ownership is enforced at the persistence layer.
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     *time.Time
	Category    TaskCategory
	Status      TaskStatus
	CompletedAt *time.Time
	CreatedBy   TaskOrigin
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPriority expresses the urgency of a task.
type TaskPriority string

const (
	TaskPriorityUrgent TaskPriority = "urgent"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityLow    TaskPriority = "low"
)

// IsValid reports whether the priority is one of the known values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityUrgent, TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}

	return false
}

// TaskCategory groups tasks into life areas.
type TaskCategory string

const (
	TaskCategoryWork     TaskCategory = "work"
	TaskCategoryPersonal TaskCategory = "personal"
	TaskCategoryFamily   TaskCategory = "family"
)

// IsValid reports whether the category is one of the known values.
func (c TaskCategory) IsValid() bool {
	switch c {
	case TaskCategoryWork, TaskCategoryPersonal, TaskCategoryFamily:
		return true
	}

	return false
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}

	return false
}

// TaskOrigin records who created a task.
type TaskOrigin string

const (
	TaskOriginUser         TaskOrigin = "user"
	TaskOriginAISuggestion TaskOrigin = "ai-suggestion"
)

// Complete marks the task as completed, stamping the completion time.
// Completing an already-completed task is a no-op for the timestamp.
func (t *Task) Complete(now time.Time) {
	if t.Status == TaskStatusCompleted {
		return
	}
	t.Status = TaskStatusCompleted
	t.CompletedAt = &now
}

// TaskFilter narrows task listings. Empty slices mean "no filter".
type TaskFilter struct {
	Statuses   []TaskStatus
	Priorities []TaskPriority
	Categories []TaskCategory
	Search     string
}

// Page describes a pagination window. Page numbering starts at 1.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of records to skip for this page.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}
