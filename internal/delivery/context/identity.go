package context

import (
	"labgas/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the echo.Context key of the authenticated caller.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the authenticated caller in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the authenticated caller, or nil outside an
// authenticated route.
func GetIdentity(c echo.Context) *entity.Identity {
	identity, _ := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity
}
