package repository

import (
	"context"

	"taskboard/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, t *domain.Tag) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TagRepository) ListByUser(ctx context.Context, userID string) ([]domain.Tag, error) {
	var tags []domain.Tag
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) GetForUser(ctx context.Context, id, userID string) (*domain.Tag, error) {
	var t domain.Tag
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// CountForUser counts how many of the given tag IDs belong to the user; used
// to reject task updates referencing foreign or missing tags.
func (r *TagRepository) CountForUser(ctx context.Context, ids []string, userID string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Tag{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Count(&count).Error
	return count, err
}

func (r *TagRepository) NameTaken(ctx context.Context, userID, name, excludeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Tag{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, name, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *TagRepository) Update(ctx context.Context, t *domain.Tag) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// Delete removes the tag and its task links.
func (r *TagRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Tag{}).Error
	})
}
