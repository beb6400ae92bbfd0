package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskflow-api/internal/domain"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskRepo) FindByID(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).First(&t, "id = ? AND user_id = ?", id, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID string, offset, limit int, sortBy, sortOrder string) ([]domain.Task, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Task{}).Where("user_id = ?", ownerID)
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var tasks []domain.Task
	if err := tx.Order(sortBy + " " + sortOrder).Offset(offset).Limit(limit).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

func (r *TaskRepo) Update(ctx context.Context, t *domain.Task) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TaskRepo) Delete(ctx context.Context, id, ownerID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}

func (r *TaskRepo) CreatedBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", ownerID, start, end).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Task{}).Where("user_id = ?", ownerID).Count(&n).Error
	return n, err
}

func (r *TaskRepo) CountByOwnerAndStatus(ctx context.Context, ownerID, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("user_id = ? AND status = ?", ownerID, status).Count(&n).Error
	return n, err
}
