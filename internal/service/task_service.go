package service

import (
	"context"
	"fmt"
	"time"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/pagination"
	"taskflow-api/pkg/utils"
)

var taskSortColumns = map[string]string{
	"title":     "title",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

type TaskService struct {
	tasks domain.TaskRepository
}

func NewTaskService(tasks domain.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

type CreateTaskInput struct {
	Title           string
	Description     string
	Status          string
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes *int
}

func (s *TaskService) Create(ctx context.Context, ownerID string, in CreateTaskInput) (*domain.Task, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}
	t := &domain.Task{
		ID:              utils.NewID(),
		Title:           in.Title,
		Description:     in.Description,
		Status:          status,
		UserID:          ownerID,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		DurationMinutes: in.DurationMinutes,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) List(ctx context.Context, ownerID string, opts pagination.Options, sortBy, order string) ([]domain.Task, pagination.Meta, error) {
	tasks, total, err := s.tasks.ListByOwner(ctx, ownerID, opts.Offset, opts.Limit,
		sortColumn(taskSortColumns, sortBy), sortOrder(order))
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	meta := pagination.BuildMeta(total, opts.CurrentPage, opts.Limit, len(tasks))
	return tasks, meta, nil
}

func (s *TaskService) GetByID(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	t, err := s.tasks.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrTaskNotFound
	}
	return t, nil
}

type UpdateTaskInput struct {
	Title           *string
	Description     *string
	Status          *string
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes *int
}

func (s *TaskService) Update(ctx context.Context, id, ownerID string, in UpdateTaskInput) (*domain.Task, error) {
	t, err := s.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.StartTime != nil {
		t.StartTime = in.StartTime
	}
	if in.EndTime != nil {
		t.EndTime = in.EndTime
	}
	if in.DurationMinutes != nil {
		t.DurationMinutes = in.DurationMinutes
	}
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id, ownerID string) error {
	n, err := s.tasks.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

type TaskTime struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TimeSpent string `json:"timeSpent"`
}

type TimeSpentReport struct {
	TotalTimeSpent string     `json:"totalTimeSpent"`
	Tasks          []TaskTime `json:"tasks"`
}

// TimeSpentReport covers tasks created within the inclusive [start, end]
// range. Per-task time is last update minus creation in whole hours, floored;
// the total is the sum of the floored per-task values.
func (s *TaskService) TimeSpentReport(ctx context.Context, ownerID string, start, end time.Time) (TimeSpentReport, error) {
	tasks, err := s.tasks.CreatedBetween(ctx, ownerID, start, end)
	if err != nil {
		return TimeSpentReport{}, err
	}

	report := TimeSpentReport{Tasks: make([]TaskTime, 0, len(tasks))}
	var totalHours int64
	for i := range tasks {
		hours := int64(tasks[i].UpdatedAt.Sub(tasks[i].CreatedAt).Hours())
		totalHours += hours
		report.Tasks = append(report.Tasks, TaskTime{
			ID:        tasks[i].ID,
			Title:     tasks[i].Title,
			TimeSpent: fmt.Sprintf("%d hours", hours),
		})
	}
	report.TotalTimeSpent = fmt.Sprintf("%d hours", totalHours)
	return report, nil
}

type CompletionReport struct {
	TotalTasks     int64  `json:"totalTasks"`
	CompletedTasks int64  `json:"completedTasks"`
	CompletionRate string `json:"completionRate"`
}

func (s *TaskService) CompletionReport(ctx context.Context, ownerID string) (CompletionReport, error) {
	total, err := s.tasks.CountByOwner(ctx, ownerID)
	if err != nil {
		return CompletionReport{}, err
	}
	completed, err := s.tasks.CountByOwnerAndStatus(ctx, ownerID, domain.StatusCompleted)
	if err != nil {
		return CompletionReport{}, err
	}

	rate := "0%"
	if total > 0 {
		rate = fmt.Sprintf("%.2f%%", float64(completed)/float64(total)*100)
	}
	return CompletionReport{
		TotalTasks:     total,
		CompletedTasks: completed,
		CompletionRate: rate,
	}, nil
}
