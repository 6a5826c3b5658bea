package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/syndicma/syndic-platform/internal/auth"
	"github.com/syndicma/syndic-platform/internal/core/domain"
)

// RequireCapability enforces the role→capability policy table on a route.
// The Auth middleware must run first; a request whose role lacks the
// capability gets 403.
func RequireCapability(capability auth.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if !auth.CanAccess(role, capability) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireAnyCapability passes when the role holds at least one of the given
// capabilities. Used for routes shared by several roles with distinct
// scoping (e.g. maintenance listing).
func RequireAnyCapability(capabilities ...auth.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			for _, capability := range capabilities {
				if auth.CanAccess(role, capability) {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
