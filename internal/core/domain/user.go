package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "ADMIN"
	RoleMentor = "MENTOR"
	RoleMentee = "MENTEE"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMentor, RoleMentee:
		return true
	}
	return false
}

// User models a registered account in the system.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated principal reconstructed from a session token.
// It reflects the user's state at token mint time: role changes made after
// sign-in do not take effect until the holder re-authenticates.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
