package repositories

import (
	"context"

	"github.com/skyexp/booking-backend/internal/domain/entities"
)

// UserRepository defines the interface for admin account operations
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// GetByUsernameOrEmail retrieves a user matching either identifier
	GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*entities.User, error)
}
