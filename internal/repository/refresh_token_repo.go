package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"taskboard/internal/domain"

	"gorm.io/gorm"
)

// RefreshTokenRepository owns the refresh_tokens table. No other component
// writes to it.
type RefreshTokenRepository struct {
	db            *gorm.DB
	cleanupOnMiss bool
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db, cleanupOnMiss: true}
}

// WithCleanupOnMiss toggles the opportunistic sweep of expired rows that runs
// whenever a lookup misses. Disable under heavy read load; the cron endpoint
// covers the sweep either way.
func (r *RefreshTokenRepository) WithCleanupOnMiss(enabled bool) *RefreshTokenRepository {
	r.cleanupOnMiss = enabled
	return r
}

// Save deletes every existing token for the user and inserts the new one in a
// single transaction, so at most one refresh token is live per user. A second
// login invalidates the first device's session.
func (r *RefreshTokenRepository) Save(ctx context.Context, userID, token string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&domain.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(&domain.RefreshToken{
			Token:     token,
			UserID:    userID,
			ExpiresAt: expiresAt,
		}).Error
	})
}

// FindValid returns the record matching both token and user with a future
// expiry, or nil when no such record exists.
func (r *RefreshTokenRepository) FindValid(ctx context.Context, token, userID string) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := r.db.WithContext(ctx).
		Where("token = ? AND user_id = ? AND expires_at > ?", token, userID, time.Now()).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.sweepOnMiss(ctx)
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *RefreshTokenRepository) sweepOnMiss(ctx context.Context) {
	if !r.cleanupOnMiss {
		return
	}
	if count, err := r.DeleteExpired(ctx); err != nil {
		log.Printf("refresh_token_sweep failed: %v", err)
	} else if count > 0 {
		log.Printf("refresh_token_sweep deleted=%d", count)
	}
}

// DeleteByToken is idempotent: deleting an absent token is not an error.
func (r *RefreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&domain.RefreshToken{}).Error
}

func (r *RefreshTokenRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.RefreshToken{}).Error
}

func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", time.Now()).Delete(&domain.RefreshToken{})
	return res.RowsAffected, res.Error
}
