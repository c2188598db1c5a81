package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budie/internal/domain/entity"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/domain/repository"
	"budie/internal/domain/service"
	mockRepo "budie/internal/mocks/repository"
	mockService "budie/internal/mocks/service"
	"budie/internal/usecase"
)

func newTaskServiceForTest(
	t *testing.T,
	taskRepo *mockRepo.MockTaskRepository,
	broadcaster *mockService.MockTaskBroadcaster,
) usecase.TaskUsecase {
	t.Helper()

	return NewTaskService(TaskServiceParams{
		TaskRepo:    taskRepo,
		Broadcaster: broadcaster,
		Logger:      newDiscardLogger(),
	})
}

func TestTaskService_Create_AppliesDefaultsAndBroadcasts(t *testing.T) {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	broadcaster := mockService.NewMockTaskBroadcaster(t)
	svc := newTaskServiceForTest(t, taskRepo, broadcaster)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			assert.Equal(t, ownerID, task.UserID)
			assert.Equal(t, entity.TaskPriorityMedium, task.Priority)
			assert.Equal(t, entity.TaskCategoryPersonal, task.Category)
			assert.Equal(t, entity.TaskStatusPending, task.Status)
			assert.Equal(t, entity.TaskOriginUser, task.CreatedBy)
			task.ID = taskID
		}).
		Return(nil)

	broadcaster.EXPECT().
		Broadcast(ctx, ownerID, mock.AnythingOfType("service.TaskEvent")).
		Run(func(ctx context.Context, userID uuid.UUID, event service.TaskEvent) {
			assert.Equal(t, service.TaskEventCreated, event.Event)
		}).
		Return(nil)

	dto, err := svc.Create(ctx, ownerID, &usecase.CreateTaskInput{Title: "Buy groceries"})

	require.NoError(t, err)
	assert.Equal(t, taskID, dto.ID)
	assert.Equal(t, "Buy groceries", dto.Title)
	assert.Equal(t, "medium", dto.Priority)
}

func TestTaskService_Create_BroadcastFailureDoesNotFail(t *testing.T) {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	broadcaster := mockService.NewMockTaskBroadcaster(t)
	svc := newTaskServiceForTest(t, taskRepo, broadcaster)

	ctx := context.Background()
	ownerID := uuid.New()

	taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Return(nil)
	broadcaster.EXPECT().
		Broadcast(ctx, ownerID, mock.AnythingOfType("service.TaskEvent")).
		Return(errors.New("socket layer is on fire"))

	dto, err := svc.Create(ctx, ownerID, &usecase.CreateTaskInput{Title: "Still persisted"})

	require.NoError(t, err)
	assert.Equal(t, "Still persisted", dto.Title)
}

func TestTaskService_Get_NotOwnedReadsAsNotFound(t *testing.T) {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	broadcaster := mockService.NewMockTaskBroadcaster(t)
	svc := newTaskServiceForTest(t, taskRepo, broadcaster)

	ctx := context.Background()
	strangerID := uuid.New()
	taskID := uuid.New()

	taskRepo.EXPECT().
		FindByID(ctx, taskID, strangerID).
		Return(nil, repository.ErrTaskNotFound)

	_, err := svc.Get(ctx, strangerID, taskID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_List_DefaultsPagination(t *testing.T) {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	broadcaster := mockService.NewMockTaskBroadcaster(t)
	svc := newTaskServiceForTest(t, taskRepo, broadcaster)

	ctx := context.Background()
	ownerID := uuid.New()
	tasks := []*entity.Task{
		{ID: uuid.New(), UserID: ownerID, Title: "a", Status: entity.TaskStatusPending},
		{ID: uuid.New(), UserID: ownerID, Title: "b", Status: entity.TaskStatusPending},
	}

	taskRepo.EXPECT().
		List(ctx, ownerID, entity.TaskFilter{Search: "gro"}, entity.Page{Number: 1, Size: 20}).
		Return(tasks, int64(42), nil)

	output, err := svc.List(ctx, ownerID, &usecase.ListTasksInput{Search: "gro"})

	require.NoError(t, err)
	assert.Len(t, output.Tasks, 2)
	assert.Equal(t, int64(42), output.Pagination.Total)
	assert.Equal(t, 1, output.Pagination.Page)
	assert.Equal(t, 20, output.Pagination.Limit)
	assert.Equal(t, 3, output.Pagination.Pages)
}

func TestTaskService_Update_AppliesPartialFields(t *testing.T) {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	broadcaster := mockService.NewMockTaskBroadcaster(t)
	svc := newTaskServiceForTest(t, taskRepo, broadcaster)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()
	existing := &entity.Task{
		ID:       taskID,
		UserID:   ownerID,
		Title:    "old title",
		Priority: entity.TaskPriorityLow,
		Category: entity.TaskCategoryWork,
		Status:   entity.TaskStatusPending,
	}

	taskRepo.EXPECT().FindByID(ctx, taskID, ownerID).Return(existing, nil).Twice()
	taskRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			assert.Equal(t, "new title", task.Title)
			assert.Equal(t, entity.TaskPriorityLow, task.Priority)
			assert.Equal(t, entity.TaskStatusCompleted, task.Status)
			assert.NotNil(t, task.CompletedAt)
		}).
		Return(nil)
	broadcaster.EXPECT().
		Broadcast(ctx, ownerID, mock.AnythingOfType("service.TaskEvent")).
		Run(func(ctx context.Context, userID uuid.UUID, event service.TaskEvent) {
			assert.Equal(t, service.TaskEventUpdated, event.Event)
		}).
		Return(nil)

	title := "new title"
	status := "completed"
	dto, err := svc.Update(ctx, ownerID, taskID, &usecase.UpdateTaskInput{
		Title:  &title,
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, "new title", dto.Title)
}

func TestTaskService_Delete_EmitsTaskIDOnly(t *testing.T) {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	broadcaster := mockService.NewMockTaskBroadcaster(t)
	svc := newTaskServiceForTest(t, taskRepo, broadcaster)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	taskRepo.EXPECT().Delete(ctx, taskID, ownerID).Return(nil)
	broadcaster.EXPECT().
		Broadcast(ctx, ownerID, mock.AnythingOfType("service.TaskEvent")).
		Run(func(ctx context.Context, userID uuid.UUID, event service.TaskEvent) {
			assert.Equal(t, service.TaskEventDeleted, event.Event)
			data, ok := event.Data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, taskID, data["taskId"])
			assert.NotContains(t, data, "task")
		}).
		Return(nil)

	err := svc.Delete(ctx, ownerID, taskID)
	assert.NoError(t, err)
}

func TestTaskService_Delete_NotFound(t *testing.T) {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	broadcaster := mockService.NewMockTaskBroadcaster(t)
	svc := newTaskServiceForTest(t, taskRepo, broadcaster)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()

	taskRepo.EXPECT().Delete(ctx, taskID, ownerID).Return(repository.ErrTaskNotFound)

	err := svc.Delete(ctx, ownerID, taskID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
}

func TestTaskService_Complete_SetsTimestampOnce(t *testing.T) {
	taskRepo := mockRepo.NewMockTaskRepository(t)
	broadcaster := mockService.NewMockTaskBroadcaster(t)
	svc := newTaskServiceForTest(t, taskRepo, broadcaster)

	ctx := context.Background()
	ownerID := uuid.New()
	taskID := uuid.New()
	completedAt := time.Now().UTC().Add(-time.Hour)
	existing := &entity.Task{
		ID:          taskID,
		UserID:      ownerID,
		Title:       "already done",
		Status:      entity.TaskStatusCompleted,
		CompletedAt: &completedAt,
	}

	taskRepo.EXPECT().FindByID(ctx, taskID, ownerID).Return(existing, nil)
	taskRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			// Completing an already completed task keeps the original timestamp.
			require.NotNil(t, task.CompletedAt)
			assert.True(t, task.CompletedAt.Equal(completedAt))
		}).
		Return(nil)
	broadcaster.EXPECT().
		Broadcast(ctx, ownerID, mock.AnythingOfType("service.TaskEvent")).
		Run(func(ctx context.Context, userID uuid.UUID, event service.TaskEvent) {
			assert.Equal(t, service.TaskEventCompleted, event.Event)
		}).
		Return(nil)

	dto, err := svc.Complete(ctx, ownerID, taskID)
	require.NoError(t, err)
	assert.Equal(t, "completed", dto.Status)
}
