package service

import (
	"labgas/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, stateless access tokens.
type TokenService interface {
	// Issue signs a token for the given user.
	Issue(userID uuid.UUID, email string) (string, error)

	// Verify checks signature and expiry. It returns errors.ErrExpiredCredential
	// for expired tokens and errors.ErrInvalidCredential for anything else.
	Verify(token string) (*entity.Identity, error)
}
