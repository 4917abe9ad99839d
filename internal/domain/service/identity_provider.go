package service

import (
	"context"

	"labgas/internal/domain/entity"
)

// SignUpInput carries the registration form. Name and Role are stored as
// account metadata.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.Role
}

// IdentityProvider checks credentials and manages accounts.
type IdentityProvider interface {
	// SignIn returns the account for valid credentials or errors.ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (*entity.User, error)

	// SignUp creates an account and returns it.
	SignUp(ctx context.Context, input *SignUpInput) (*entity.User, error)

	// ResetPassword starts the password recovery flow for email.
	ResetPassword(ctx context.Context, email string) error
}
