package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/avatarctic/catalog-edge/internal/core/ports"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/catalogapi"
	"github.com/avatarctic/catalog-edge/internal/infrastructure/httpserver/helpers"
)

type AdminMiddleware struct {
	tokens ports.TokenVerifier
	logger *logrus.Logger
}

func NewAdminMiddleware(tokens ports.TokenVerifier, logger *logrus.Logger) *AdminMiddleware {
	return &AdminMiddleware{tokens: tokens, logger: logger}
}

// RequireAdmin validates the bearer token, requires the admin role and forwards the
// token to the catalog backend on every call made for this request.
func (m *AdminMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := helpers.GetJWTTokenFromContext(c)
			if err != nil {
				return err
			}

			claims, err := m.tokens.ValidateToken(c.Request().Context(), tokenString)
			if err != nil {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path, "error": err.Error()}).Warn("JWT validation failed")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			if !claims.IsAdmin() {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"user_id": claims.UserID, "role": claims.Role}).Warn("non-admin token on admin route")
				}
				return echo.NewHTTPError(http.StatusForbidden, "admin role required")
			}

			helpers.SetClaims(c, claims)
			ctx := catalogapi.WithBearerToken(c.Request().Context(), tokenString)
			c.SetRequest(c.Request().WithContext(ctx))

			if m.logger != nil {
				m.logger.WithFields(logrus.Fields{"user_id": claims.UserID, "role": claims.Role}).Debug("admin token validated")
			}
			return next(c)
		}
	}
}
