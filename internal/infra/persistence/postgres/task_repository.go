package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"budie/internal/domain/entity"
	domainerrors "budie/internal/domain/errors"
	"budie/internal/domain/repository"
	"budie/internal/infra/persistence/model"
)

// taskRepository implements the domain.TaskRepository interface using GORM.
// Every query is scoped by the owning user ID, so "not found" and
// "not owned" are indistinguishable by construction.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// FindByID retrieves a single task scoped by (id, ownerID).
func (repo *taskRepository) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel
	if err := repo.db.WithContext(ctx).
		First(&taskM, "id = ? AND user_id = ?", id, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// List retrieves tasks for a user matching the filter, newest first,
// together with the total count for pagination.
func (repo *taskRepository) List(ctx context.Context, ownerID uuid.UUID, filter entity.TaskFilter, page entity.Page) ([]*entity.Task, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.TaskModel{}).Where("user_id = ?", ownerID)

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", toStrings(filter.Statuses))
	}
	if len(filter.Priorities) > 0 {
		query = query.Where("priority IN ?", toStrings(filter.Priorities))
	}
	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", toStrings(filter.Categories))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count tasks")
	}

	var models []*model.TaskModel
	if err := query.
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&models).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(models))
	for _, taskM := range models {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, total, nil
}

// Create persists a new task.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// Update modifies an existing task scoped by (task.ID, task.UserID).
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	result := repo.db.WithContext(ctx).Model(&model.TaskModel{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]any{
			"title":        task.Title,
			"description":  task.Description,
			"priority":     string(task.Priority),
			"due_date":     task.DueDate,
			"category":     string(task.Category),
			"status":       string(task.Status),
			"completed_at": task.CompletedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// Delete removes a task scoped by (id, ownerID).
func (repo *taskRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.TaskModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}

	return out
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM TaskModel to a domain Task entity.
func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Priority:    entity.TaskPriority(data.Priority),
		DueDate:     data.DueDate,
		Category:    entity.TaskCategory(data.Category),
		Status:      entity.TaskStatus(data.Status),
		CompletedAt: data.CompletedAt,
		CreatedBy:   entity.TaskOrigin(data.CreatedBy),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromTaskDomain converts a domain Task entity to a GORM TaskModel.
func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Priority:    string(data.Priority),
		DueDate:     data.DueDate,
		Category:    string(data.Category),
		Status:      string(data.Status),
		CompletedAt: data.CompletedAt,
		CreatedBy:   string(data.CreatedBy),
	}
}
