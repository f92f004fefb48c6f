package helpers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avatarctic/catalog-edge/internal/core/domain/auth"
)

// GetClaimsFromContext returns the admin claims set by the admin middleware.
func GetClaimsFromContext(c echo.Context) (*auth.Claims, error) {
	claims, ok := GetClaimsRaw(c)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid admin context")
	}
	return claims, nil
}

func GetJWTTokenFromContext(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "empty token")
	}
	return token, nil
}
