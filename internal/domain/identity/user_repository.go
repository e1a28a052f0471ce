package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user with optimistic locking
	Update(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if an email is already registered
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ConsumeCredit decrements briefs_available and increments briefs_used
	// in a single conditional UPDATE. It returns false when the user has
	// no credit left; the counter never goes below zero.
	ConsumeCredit(ctx context.Context, id uuid.UUID) (bool, error)

	// RefundCredit reverses a ConsumeCredit after a failed generation
	RefundCredit(ctx context.Context, id uuid.UUID) error
}
