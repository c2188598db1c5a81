package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "budie/internal/delivery/context"
	"budie/internal/delivery/http/response"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/usecase"
)

// TaskHandler holds dependencies for task handlers.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns a filtered, paginated page of the caller's tasks.
func (h *TaskHandler) List(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	var input usecase.ListTasksInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid task filters")
	}

	// Filters accept both repeated params and comma-separated values.
	input.Statuses = splitCSV(input.Statuses)
	input.Priorities = splitCSV(input.Priorities)
	input.Categories = splitCSV(input.Categories)

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.List(c.Request().Context(), ownerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Get returns a single task.
func (h *TaskHandler) Get(c echo.Context) error {
	ownerID, taskID, err := taskRequestIDs(c)
	if err != nil {
		return err
	}

	task, err := h.uc.Get(c.Request().Context(), ownerID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"task": task})
}

// Create persists a new task.
func (h *TaskHandler) Create(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrNoToken
	}

	var input usecase.CreateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.Create(c.Request().Context(), ownerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"task": task})
}

// Update applies a partial update to a task.
func (h *TaskHandler) Update(c echo.Context) error {
	ownerID, taskID, err := taskRequestIDs(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid task input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.Update(c.Request().Context(), ownerID, taskID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"task": task})
}

// Delete removes a task.
func (h *TaskHandler) Delete(c echo.Context) error {
	ownerID, taskID, err := taskRequestIDs(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID, taskID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"taskId": taskID})
}

// Complete marks a task completed.
func (h *TaskHandler) Complete(c echo.Context) error {
	ownerID, taskID, err := taskRequestIDs(c)
	if err != nil {
		return err
	}

	task, err := h.uc.Complete(c.Request().Context(), ownerID, taskID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"task": task})
}

// taskRequestIDs resolves the authenticated owner and the task ID path
// parameter. A non-UUID path parameter reads as not found rather than a
// validation error, matching the lookup that would follow.
func taskRequestIDs(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrNoToken
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrTaskNotFound
	}

	return ownerID, taskID, nil
}

func splitCSV(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
