package context

import (
	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID = "user_id"
	keyRole   = "role"
)

// SetIdentity stores the authenticated user in echo.Context.
func SetIdentity(c echo.Context, userID uuid.UUID, role entity.Role) {
	c.Set(keyUserID, userID)
	c.Set(keyRole, role)
}

// GetUserID returns the authenticated user ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRole returns the authenticated user's role.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(keyRole).(entity.Role)

	return role, ok
}
