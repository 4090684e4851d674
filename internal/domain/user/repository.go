package user

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for campus accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Save(ctx context.Context, user *User) error
}
