package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow-api/internal/domain"
	"taskflow-api/internal/pagination"
	"taskflow-api/internal/repo/inmemory"
	"taskflow-api/pkg/utils"
)

func TestTaskCreateDefaultsToPending(t *testing.T) {
	svc := NewTaskService(inmemory.NewTaskStore())
	ctx := context.Background()

	task, err := svc.Create(ctx, "owner-1", CreateTaskInput{Title: "T", Description: "D"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Equal(t, "owner-1", task.UserID)
	assert.NotEmpty(t, task.ID)

	task, err = svc.Create(ctx, "owner-1", CreateTaskInput{Title: "T2", Description: "D", Status: domain.StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, task.Status)
}

func TestTaskOwnershipIndistinguishableFromMissing(t *testing.T) {
	svc := NewTaskService(inmemory.NewTaskStore())
	ctx := context.Background()

	task, err := svc.Create(ctx, "owner-1", CreateTaskInput{Title: "T", Description: "D"})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, task.ID, "owner-2")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, errMissing := svc.GetByID(ctx, "no-such-id", "owner-2")
	assert.Equal(t, errMissing, err) // not-owned and missing look identical

	title := "X"
	_, err = svc.Update(ctx, task.ID, "owner-2", UpdateTaskInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, task.ID, "owner-2"), domain.ErrTaskNotFound)

	// owner still sees it untouched
	got, err := svc.GetByID(ctx, task.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "T", got.Title)
}

func TestTaskListIsOwnerScoped(t *testing.T) {
	svc := NewTaskService(inmemory.NewTaskStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, "owner-1", CreateTaskInput{Title: fmt.Sprintf("T%d", i), Description: "D"})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, "owner-2", CreateTaskInput{Title: "other", Description: "D"})
	require.NoError(t, err)

	tasks, meta, err := svc.List(ctx, "owner-1", pagination.Paginate("1", "2"), "title", "ASC")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, int64(3), meta.TotalItems)
	for _, task := range tasks {
		assert.Equal(t, "owner-1", task.UserID)
	}
}

func TestTaskUpdatePartial(t *testing.T) {
	svc := NewTaskService(inmemory.NewTaskStore())
	ctx := context.Background()

	task, err := svc.Create(ctx, "owner-1", CreateTaskInput{Title: "T", Description: "D"})
	require.NoError(t, err)

	status := domain.StatusInProgress
	updated, err := svc.Update(ctx, task.ID, "owner-1", UpdateTaskInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)
	assert.Equal(t, "T", updated.Title)
	assert.Equal(t, "D", updated.Description)
}

func seedTask(store *inmemory.TaskStore, owner, title string, created time.Time, worked time.Duration, status string) {
	store.Seed(domain.Task{
		ID:        utils.NewID(),
		Title:     title,
		Status:    status,
		UserID:    owner,
		CreatedAt: created,
		UpdatedAt: created.Add(worked),
	})
}

func TestTimeSpentReport(t *testing.T) {
	store := inmemory.NewTaskStore()
	svc := NewTaskService(store)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	seedTask(store, "owner-1", "two and a half hours", base, 150*time.Minute, domain.StatusCompleted)
	seedTask(store, "owner-1", "immediate", base.Add(time.Hour), 0, domain.StatusPending)
	seedTask(store, "owner-1", "three hours", base.Add(2*time.Hour), 3*time.Hour, domain.StatusCompleted)
	seedTask(store, "owner-1", "outside range", base.AddDate(0, 1, 0), 5*time.Hour, domain.StatusCompleted)
	seedTask(store, "owner-2", "other owner", base, 8*time.Hour, domain.StatusCompleted)

	report, err := svc.TimeSpentReport(ctx, "owner-1", base.Add(-time.Hour), base.Add(24*time.Hour))
	require.NoError(t, err)

	require.Len(t, report.Tasks, 3)
	// 2h30m floors to 2, plus 0 and 3
	assert.Equal(t, "5 hours", report.TotalTimeSpent)
	assert.Equal(t, "2 hours", report.Tasks[0].TimeSpent)
	assert.Equal(t, "0 hours", report.Tasks[1].TimeSpent)
	assert.Equal(t, "3 hours", report.Tasks[2].TimeSpent)
}

func TestTimeSpentReportInclusiveBounds(t *testing.T) {
	store := inmemory.NewTaskStore()
	svc := NewTaskService(store)
	ctx := context.Background()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	seedTask(store, "owner-1", "at start", start, time.Hour, domain.StatusPending)
	seedTask(store, "owner-1", "at end", end, time.Hour, domain.StatusPending)
	seedTask(store, "owner-1", "before", start.Add(-time.Second), time.Hour, domain.StatusPending)
	seedTask(store, "owner-1", "after", end.Add(time.Second), time.Hour, domain.StatusPending)

	report, err := svc.TimeSpentReport(ctx, "owner-1", start, end)
	require.NoError(t, err)
	assert.Len(t, report.Tasks, 2)
}

func TestCompletionReport(t *testing.T) {
	store := inmemory.NewTaskStore()
	svc := NewTaskService(store)
	ctx := context.Background()

	t.Run("no tasks", func(t *testing.T) {
		report, err := svc.CompletionReport(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), report.TotalTasks)
		assert.Equal(t, int64(0), report.CompletedTasks)
		assert.Equal(t, "0%", report.CompletionRate)
	})

	t.Run("seven of ten completed", func(t *testing.T) {
		now := time.Now()
		for i := 0; i < 10; i++ {
			status := domain.StatusCompleted
			if i >= 7 {
				status = domain.StatusPending
			}
			seedTask(store, "owner-1", fmt.Sprintf("T%d", i), now, 0, status)
		}
		report, err := svc.CompletionReport(ctx, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, int64(10), report.TotalTasks)
		assert.Equal(t, int64(7), report.CompletedTasks)
		assert.Equal(t, "70.00%", report.CompletionRate)
	})

	t.Run("third completed rounds to two decimals", func(t *testing.T) {
		store := inmemory.NewTaskStore()
		svc := NewTaskService(store)
		now := time.Now()
		seedTask(store, "o", "a", now, 0, domain.StatusCompleted)
		seedTask(store, "o", "b", now, 0, domain.StatusPending)
		seedTask(store, "o", "c", now, 0, domain.StatusInProgress)

		report, err := svc.CompletionReport(ctx, "o")
		require.NoError(t, err)
		assert.Equal(t, "33.33%", report.CompletionRate)
	})
}
