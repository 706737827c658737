package repository

import (
	"context"

	"taskboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Status").Where("id = ?", t.ID).First(t).Error
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.WithContext(ctx).Preload("Status").
		Where("user_id = ?", userID).Order("created_at").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var t domain.Task
	err := r.db.WithContext(ctx).Preload("Status").Preload("Tags").
		Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Update saves the task and replaces its tag set with tags in one
// transaction.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task, tags []domain.Tag) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", t.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Task{ID: t.ID}).Updates(map[string]any{
			"title":       t.Title,
			"description": t.Description,
			"status_id":   t.StatusID,
			"deadline":    t.Deadline,
		}).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(&domain.Task{ID: t.ID}).Association("Tags").Append(tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Status").Preload("Tags").Where("id = ?", t.ID).First(t).Error
}

// Delete unlinks tags first, then removes the task.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Task{}).Error
	})
}

// AnyWithStatus reports whether any task still references the status.
func (r *TaskRepository) AnyWithStatus(ctx context.Context, statusID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("status_id = ?", statusID).Count(&count).Error
	return count > 0, err
}

// ReassignStatus moves every task from one status to another.
func (r *TaskRepository) ReassignStatus(ctx context.Context, fromStatusID, toStatusID string) error {
	return r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("status_id = ?", fromStatusID).
		Update("status_id", toStatusID).Error
}
