// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"labgas/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the access token issued after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the account operations exposed under /api/auth.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	ResetPassword(ctx context.Context, email string) error
}
