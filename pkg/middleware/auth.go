package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"agrisense/pkg/auth"
)

// Authenticate reads a Bearer token and puts uid/role into the context.
// A missing or invalid token falls back to the dev identity so local
// development works without a login step.
func Authenticate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, role := auth.DefaultUID, auth.RoleFarmer
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.HasPrefix(header, "Bearer ") {
				if id, err := auth.Parse(secret, strings.TrimPrefix(header, "Bearer ")); err == nil {
					uid, role = id.UID, id.Role
				}
			}
			c.Set("uid", uid)
			c.Set("role", role)
			return next(c)
		}
	}
}

// AdminOnly rejects requests whose authenticated role is not admin.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role, _ := c.Get("role").(string); role != auth.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin only"})
			}
			return next(c)
		}
	}
}
