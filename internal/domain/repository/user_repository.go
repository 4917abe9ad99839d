package repository

import (
	"context"

	"labgas/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository backs the local identity provider.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. A taken email yields errors.ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error
}
