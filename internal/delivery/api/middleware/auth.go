package middleware

import (
	"strings"

	deliverycontext "labgas/internal/delivery/context"
	"labgas/internal/domain/entity"
	domainerrors "labgas/internal/domain/errors"
	"labgas/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware rejects requests without a valid bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the Authorization header and stores the caller's
// identity for the handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return domainerrors.ErrMissingToken
		}

		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrInvalidCredential
		}

		token := strings.TrimSpace(header[len(bearerPrefix):])
		if token == "" {
			return domainerrors.ErrMissingToken
		}

		identity, err := m.tokenSvc.Verify(token)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, identity)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithOwner(c.Request().Context(), identity.UserID)))

		return next(c)
	}
}

// GetUserID returns the authenticated user's id.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil || identity.UserID == uuid.Nil {
		return uuid.Nil, false
	}

	return identity.UserID, true
}

// GetIdentity returns the authenticated caller.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity := deliverycontext.GetIdentity(c)

	return identity, identity != nil
}

// UserIDString is the access-log hook for the authenticated user.
func UserIDString(c echo.Context) string {
	if userID, ok := GetUserID(c); ok {
		return userID.String()
	}

	return ""
}
