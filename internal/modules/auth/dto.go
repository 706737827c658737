package auth

import "taskboard/internal/domain"

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,passwordchars"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult carries the minted pair back to the handler, which turns it into
// cookies. Tokens never appear in response bodies.
type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}
