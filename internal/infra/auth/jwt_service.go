// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"labgas/config"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/service"
	"labgas/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration // Zero issues tokens without an exp claim.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.SecretKey.TTL < 0 {
		return nil, errors.Errorf("jwt ttl must not be negative: %s", cfg.SecretKey.TTL)
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Token),
		ttl:    cfg.SecretKey.TTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token carrying user_id and email.
func (s *jwtService) Issue(userID uuid.UUID, email string) (string, error) {
	now := s.now()
	claims := service.Claims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses the token and returns the identity it was issued for.
func (s *jwtService) Verify(tokenString string) (*entity.Identity, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrExpiredCredential
		}

		return nil, domainerrors.ErrInvalidCredential
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredential
	}

	return &entity.Identity{
		UserID: userID,
		Email:  claims.Email,
	}, nil
}
