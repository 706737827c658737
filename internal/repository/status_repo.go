package repository

import (
	"context"

	"taskboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) Create(ctx context.Context, s *domain.Status) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StatusRepository) ListByUser(ctx context.Context, userID string) ([]domain.Status, error) {
	var statuses []domain.Status
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&statuses).Error
	return statuses, err
}

func (r *StatusRepository) GetByID(ctx context.Context, id string) (*domain.Status, error) {
	var s domain.Status
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetForUser returns the status only when it belongs to the user.
func (r *StatusRepository) GetForUser(ctx context.Context, id, userID string) (*domain.Status, error) {
	var s domain.Status
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StatusRepository) GetByName(ctx context.Context, userID, name string) (*domain.Status, error) {
	var s domain.Status
	if err := r.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// NameTaken reports whether another status of the same user already uses the
// name.
func (r *StatusRepository) NameTaken(ctx context.Context, userID, name, excludeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Status{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, name, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *StatusRepository) Update(ctx context.Context, s *domain.Status) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StatusRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Status{}).Error
}
