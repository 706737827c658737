package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"taskboard/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service orchestrates login, register, refresh and logout: credential
// checks, minting the access/refresh pair, persisting and rotating refresh
// tokens.
type Service struct {
	users  UserRepositoryInterface
	tokens RefreshTokenRepositoryInterface
	codec  TokenCodec
}

func NewService(users UserRepositoryInterface, tokens RefreshTokenRepositoryInterface, codec TokenCodec) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		codec:  codec,
	}
}

// Login verifies credentials and issues a fresh token pair. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(ctx, user)
}

// Register creates the user together with their default statuses and tags in
// one transaction, then issues the first token pair.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}

	err = s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		for _, ds := range domain.DefaultStatuses {
			if err := tx.Create(&domain.Status{
				ID:        uuid.NewString(),
				Name:      ds.Name,
				Color:     ds.Color,
				IsDefault: true,
				UserID:    user.ID,
			}).Error; err != nil {
				return err
			}
		}
		for _, dt := range domain.DefaultTags {
			if err := tx.Create(&domain.Tag{
				ID:        uuid.NewString(),
				Name:      dt.Name,
				Color:     dt.Color,
				IsDefault: true,
				UserID:    user.ID,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.issuePair(ctx, user)
}

// Refresh exchanges a structurally valid, unrevoked refresh token for a new
// pair. Signature failure, expiry and a store miss all collapse into
// ErrInvalidRefreshToken; nothing more specific leaves the service.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	record, err := s.tokens.FindValid(ctx, refreshToken, claims.UserID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Rotate: the presented token dies with this exchange.
	if err := s.tokens.DeleteByToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issuePair(ctx, user)
}

// Logout is best effort. The handler clears cookies no matter what happens
// here, so store failures are logged and swallowed.
func (s *Service) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	if err := s.tokens.DeleteByToken(ctx, refreshToken); err != nil {
		log.Printf("logout token_delete failed: %v", err)
	}
}

// CleanupExpired bulk-deletes expired refresh records and returns the count.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	return s.tokens.DeleteExpired(ctx)
}

func (s *Service) issuePair(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.codec.SignAccess(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.codec.SignRefresh(user.ID)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Save(ctx, user.ID, refreshToken, s.codec.RefreshExpiry()); err != nil {
		return nil, err
	}
	return &AuthResult{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
