package middleware

import (
	"strings"

	"localharvest/config"
	"localharvest/internal/delivery/api/response"
	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/entity"
	"localharvest/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Config       *config.Config
}

// AuthMiddleware authenticates requests with the access token from the
// Authorization header or the session cookie.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   params.TokenService,
		cookieName: params.Config.Auth.CookieName,
	}
}

// Authenticate rejects the request with 401 unless it carries a valid token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c)
		if token == "" {
			return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
		}

		claims, err := m.tokenSvc.ValidateToken(token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		role := entity.Role(claims.Role)
		if !role.IsValid() {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token carries an unknown role")
		}

		deliverycontext.SetIdentity(c, claims.UserID, role)

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := deliverycontext.GetRole(c)
			if !ok {
				return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
			}
			if role != required {
				return response.Forbidden(c, "FORBIDDEN", "This action requires the "+required.String()+" role")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}

		return ""
	}

	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}
