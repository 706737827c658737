package auth

import (
	"context"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/pkg/token"

	"gorm.io/gorm"
)

// UserRepositoryInterface covers only the methods the auth service uses.
type UserRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DB() *gorm.DB // for the register transaction
}

// RefreshTokenRepositoryInterface is persistence for refresh tokens. The
// store, not the service, owns the single-session-per-user rotation rule.
type RefreshTokenRepositoryInterface interface {
	Save(ctx context.Context, userID, token string, expiresAt time.Time) error
	FindValid(ctx context.Context, token, userID string) (*domain.RefreshToken, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteAllForUser(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// TokenCodec is signing plus the structural half of refresh verification.
type TokenCodec interface {
	SignAccess(userID, email string) (string, error)
	SignRefresh(userID string) (string, error)
	VerifyRefresh(tokenStr string) (*token.Claims, error)
	RefreshExpiry() time.Time
}
