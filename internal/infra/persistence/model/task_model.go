package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskModel is the GORM model for the tasks table.
type TaskModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Priority    string `gorm:"not null;default:medium"`
	DueDate     *time.Time
	Category    string `gorm:"not null;default:personal"`
	Status      string `gorm:"not null;default:pending;index"`
	CompletedAt *time.Time
	CreatedBy   string    `gorm:"not null;default:user"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName overrides the default table name.
func (TaskModel) TableName() string {
	return "tasks"
}
