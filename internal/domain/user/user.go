// Package user holds the campus account aggregate used for saved
// route history and the admin dashboard.
package user

import (
	"time"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain"
	"github.com/google/uuid"
)

// Roles recognized by the authorization middleware.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User is the aggregate root for a campus account.
type User struct {
	id           uuid.UUID
	username     string
	passwordHash string
	email        string
	role         string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new student account with validated fields. The
// password hash must already be computed by the caller.
func NewUser(username, passwordHash, email string) (*User, error) {
	if username == "" {
		return nil, domain.NewValidationError("username is required")
	}
	if passwordHash == "" {
		return nil, domain.NewValidationError("password is required")
	}

	now := time.Now().UTC()
	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		role:         RoleStudent,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id uuid.UUID, username, passwordHash, email, role string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the account's unique identifier.
func (u *User) ID() uuid.UUID { return u.id }

// Username returns the unique login name.
func (u *User) Username() string { return u.username }

// PasswordHash returns the bcrypt hash of the account password.
func (u *User) PasswordHash() string { return u.passwordHash }

// Email returns the contact email, possibly empty.
func (u *User) Email() string { return u.email }

// Role returns the account role.
func (u *User) Role() string { return u.role }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
