package domain

import "time"

// RefreshToken persists issued refresh tokens so they can be revoked.
//
// The signed token string itself is the primary key: lookups during refresh
// always match on the exact value the client presented. At most one live row
// exists per user — issuing a new token deletes all prior rows for that user
// (single active session per user).
type RefreshToken struct {
	Token     string    `json:"-" gorm:"primaryKey;size:512"`
	UserID    string    `json:"user_id" gorm:"index;size:36;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
