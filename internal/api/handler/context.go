package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/syndicma/syndic-platform/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a present, valid role
// proves the middleware ran.
func ctxClaims(c echo.Context) (userID string, role domain.Role, err error) {
	role, _ = c.Get("role").(domain.Role)
	if !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	return userID, role, nil
}
