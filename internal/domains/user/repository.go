package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the user data access contract
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	// GetByIdentifier looks a user up by username first, then by
	// email, so login can accept either.
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
