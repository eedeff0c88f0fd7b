package auth

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/phuong-practice-projects/healthy-system/internal/records"
)

const MinPasswordLength = 8

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrWrongPassword  = errors.New("wrong password")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrPasswordLength = errors.New("password too short")
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"`
	records.Audit
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Credentials
	DisplayName string `json:"displayName"`
}

// NormalizeEmail lower-cases and trims the address; emails are unique in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r Registration) Validate() error {
	addr, err := mail.ParseAddress(r.Email)
	if err != nil || addr.Address != strings.TrimSpace(r.Email) {
		return ErrInvalidEmail
	}
	if len(r.Password) < MinPasswordLength {
		return ErrPasswordLength
	}
	return nil
}
