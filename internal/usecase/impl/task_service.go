package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "budie/internal/delivery/context"
	"budie/internal/domain/entity"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/domain/repository"
	"budie/internal/domain/service"
	"budie/internal/usecase"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo    repository.TaskRepository
	broadcaster service.TaskBroadcaster
	logger      *slog.Logger
}

// TaskServiceParams holds dependencies for taskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TaskRepo    repository.TaskRepository
	Broadcaster service.TaskBroadcaster
	Logger      *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		taskRepo:    params.TaskRepo,
		broadcaster: params.Broadcaster,
		logger:      params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of the owner's tasks matching the filters.
func (srv *taskService) List(ctx context.Context, ownerID uuid.UUID, input *usecase.ListTasksInput) (*usecase.ListTasksOutput, error) {
	filter := entity.TaskFilter{Search: input.Search}
	for _, s := range input.Statuses {
		filter.Statuses = append(filter.Statuses, entity.TaskStatus(s))
	}
	for _, p := range input.Priorities {
		filter.Priorities = append(filter.Priorities, entity.TaskPriority(p))
	}
	for _, c := range input.Categories {
		filter.Categories = append(filter.Categories, entity.TaskCategory(c))
	}

	page := entity.Page{Number: input.Page, Size: input.Limit}
	if page.Number < 1 {
		page.Number = 1
	}
	if page.Size < 1 {
		page.Size = defaultPageSize
	}
	if page.Size > maxPageSize {
		page.Size = maxPageSize
	}

	tasks, total, err := srv.taskRepo.List(ctx, ownerID, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	dtos := make([]*usecase.TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, usecase.NewTaskDTO(task))
	}

	pages := int((total + int64(page.Size) - 1) / int64(page.Size))

	return &usecase.ListTasksOutput{
		Tasks: dtos,
		Pagination: usecase.Pagination{
			Page:  page.Number,
			Limit: page.Size,
			Total: total,
			Pages: pages,
		},
	}, nil
}

// Get returns a single task owned by the caller.
func (srv *taskService) Get(ctx context.Context, ownerID, taskID uuid.UUID) (*usecase.TaskDTO, error) {
	task, err := srv.findOwnedTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	return usecase.NewTaskDTO(task), nil
}

// Create persists a new task and pushes task:created to the owner's room.
func (srv *taskService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTaskInput) (*usecase.TaskDTO, error) {
	task := &entity.Task{
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    entity.TaskPriority(input.Priority),
		DueDate:     input.DueDate,
		Category:    entity.TaskCategory(input.Category),
		Status:      entity.TaskStatusPending,
		CreatedBy:   entity.TaskOrigin(input.CreatedBy),
	}
	if task.Priority == "" {
		task.Priority = entity.TaskPriorityMedium
	}
	if task.Category == "" {
		task.Category = entity.TaskCategoryPersonal
	}
	if task.CreatedBy == "" {
		task.CreatedBy = entity.TaskOriginUser
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create task")
	}

	dto := usecase.NewTaskDTO(task)
	srv.broadcast(ctx, ownerID, service.TaskEventCreated, map[string]any{"task": dto})

	return dto, nil
}

// Update applies a partial update and pushes task:updated.
func (srv *taskService) Update(ctx context.Context, ownerID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*usecase.TaskDTO, error) {
	task, err := srv.findOwnedTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	applyTaskUpdate(task, input)

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to update task")
	}

	task, err = srv.findOwnedTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	dto := usecase.NewTaskDTO(task)
	srv.broadcast(ctx, ownerID, service.TaskEventUpdated, map[string]any{"task": dto})

	return dto, nil
}

// Delete removes a task and pushes task:deleted carrying only the ID.
func (srv *taskService) Delete(ctx context.Context, ownerID, taskID uuid.UUID) error {
	if err := srv.taskRepo.Delete(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound
		}

		return errors.Wrap(err, "failed to delete task")
	}

	srv.broadcast(ctx, ownerID, service.TaskEventDeleted, map[string]any{"taskId": taskID})

	return nil
}

// Complete marks a task completed and pushes task:completed. Completing an
// already completed task is a no-op on the completion timestamp.
func (srv *taskService) Complete(ctx context.Context, ownerID, taskID uuid.UUID) (*usecase.TaskDTO, error) {
	task, err := srv.findOwnedTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Complete(time.Now().UTC())

	if err := srv.taskRepo.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to complete task")
	}

	dto := usecase.NewTaskDTO(task)
	srv.broadcast(ctx, ownerID, service.TaskEventCompleted, map[string]any{"task": dto})

	return dto, nil
}

// findOwnedTask loads a task scoped to its owner, mapping missing and
// not-owned to the same error.
func (srv *taskService) findOwnedTask(ctx context.Context, ownerID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, taskID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	return task, nil
}

// broadcast pushes a task event to the owner's room. Delivery is best
// effort: failures are logged and never surface to the caller.
func (srv *taskService) broadcast(ctx context.Context, ownerID uuid.UUID, eventType service.TaskEventType, data any) {
	event := service.TaskEvent{Event: eventType, Data: data}
	if err := srv.broadcaster.Broadcast(ctx, ownerID, event); err != nil {
		srv.log(ctx).Warn("Task event broadcast failed",
			slog.Any("userID", ownerID),
			slog.String("event", string(eventType)),
			slog.Any("error", err),
		)
	}
}

// applyTaskUpdate copies the non-nil fields of the input onto the task and
// keeps the completion timestamp consistent with the status.
func applyTaskUpdate(task *entity.Task, input *usecase.UpdateTaskInput) {
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Priority != nil {
		task.Priority = entity.TaskPriority(*input.Priority)
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Category != nil {
		task.Category = entity.TaskCategory(*input.Category)
	}
	if input.Status != nil {
		next := entity.TaskStatus(*input.Status)
		if next == entity.TaskStatusCompleted && task.Status != entity.TaskStatusCompleted {
			now := time.Now().UTC()
			task.CompletedAt = &now
		}
		if next != entity.TaskStatusCompleted {
			task.CompletedAt = nil
		}
		task.Status = next
	}
}
