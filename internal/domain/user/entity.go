// internal/domain/user/entity.go
package user

import (
	"errors"
	"time"
)

var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for a failed login. It never says
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when no profile exists for an id or email.
	ErrUserNotFound = errors.New("user not found")
)

// Role gates the administrative surface
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile is the per-user account record kept in the KV store
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// credentials is the stored login record, separate from the profile so the
// password hash never travels with profile reads.
type credentials struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// emailIndex maps a lowercased email to its user id
type emailIndex struct {
	UserID string `json:"user_id"`
}
