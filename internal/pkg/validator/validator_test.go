package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,passwordchars"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func TestValidate_Valid(t *testing.T) {
	errs := Validate(signupForm{
		Email:           "test@example.com",
		Password:        "Password123",
		ConfirmPassword: "Password123",
	})
	assert.Nil(t, errs)
}

func TestValidate_KeysAreJSONNames(t *testing.T) {
	errs := Validate(signupForm{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "confirmPassword")
	assert.Contains(t, errs["email"], "Required")
}

func TestValidate_Messages(t *testing.T) {
	errs := Validate(signupForm{
		Email:           "not-an-email",
		Password:        "short1",
		ConfirmPassword: "different1",
	})
	assert.Contains(t, errs["email"], "Invalid email")
	assert.Contains(t, errs["password"], "Must be at least 8 characters")
	assert.Contains(t, errs["confirmPassword"], "Passwords don't match")
}

func TestValidate_PasswordChars(t *testing.T) {
	errs := Validate(signupForm{
		Email:           "test@example.com",
		Password:        "onlyletters",
		ConfirmPassword: "onlyletters",
	})
	assert.Contains(t, errs["password"], "Password must contain at least one letter and one number")

	errs = Validate(signupForm{
		Email:           "test@example.com",
		Password:        "12345678",
		ConfirmPassword: "12345678",
	})
	assert.Contains(t, errs["password"], "Password must contain at least one letter and one number")
}
