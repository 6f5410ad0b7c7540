package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-system/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth validates the bearer token and injects the authenticated identity
// into the echo context. The header must be exactly "Bearer <token>": the
// scheme keyword is case-sensitive and trailing content is rejected.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.ValidateAccess(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, identity.UserID)
			c.Set(CtxEmail, identity.Email)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}
