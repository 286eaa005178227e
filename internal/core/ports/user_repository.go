package ports

import (
	"context"

	"bitebox/internal/core/domain/model/kernel"
	"bitebox/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new user account.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user account.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a non-deleted user by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
