package domain

import (
	"context"
	"time"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID              string     `gorm:"primaryKey;size:36" json:"id"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     string     `gorm:"size:255;not null" json:"description"`
	Status          string     `gorm:"size:16;not null;default:pending" json:"status"`
	UserID          string     `gorm:"size:36;not null;index" json:"userId"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Task) TableName() string { return "tasks" }

// TaskRepository is owner-scoped on every lookup: a task that exists under a
// different owner is indistinguishable from one that does not exist.
type TaskRepository interface {
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id, ownerID string) (*Task, error)
	ListByOwner(ctx context.Context, ownerID string, offset, limit int, sortBy, sortOrder string) ([]Task, int64, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id, ownerID string) (int64, error)
	CreatedBetween(ctx context.Context, ownerID string, start, end time.Time) ([]Task, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	CountByOwnerAndStatus(ctx context.Context, ownerID, status string) (int64, error)
}
